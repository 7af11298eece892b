// Package committer collects Spanner mutations into a plan and applies the
// plan in a single atomic commit.
//
// Repositories build mutations but never apply them; the owner of a unit of
// work gathers everything that must commit together into one CommitPlan.
// For the catalog this means a product row and its discount rows land in
// the same transaction: either all of them commit or none do, and a
// constraint violation fails the whole plan. That failure carries the gRPC
// status code from Spanner, so Apply returns it unwrapped for the caller to
// classify.
package committer

import (
	"context"

	"cloud.google.com/go/spanner"
)

// CommitPlan is an ordered collection of mutations that must commit
// atomically.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan. Nil mutations are ignored.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Committer executes CommitPlans against a Spanner database.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply commits the plan in one transaction. The error from Spanner is
// returned as-is so callers can read its status code; an empty plan is a
// no-op.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	_, err := c.client.Apply(ctx, plan.Mutations())
	return err
}
