package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/light-bringer/discount-service/internal/app/catalog/domain"
)

type memProduct struct {
	product   *domain.Product
	discounts map[domain.DiscountID]domain.AppliedDiscount
}

// MemProductRepo is an in-memory ProductRepository for unit tests. It
// enforces the same uniqueness rules as the Spanner repository: one row per
// product id, one row per (product id, discount id). All methods are safe
// for concurrent use, so races between competing Save calls resolve the way
// they would against real storage: one winner, conflicts for the rest.
type MemProductRepo struct {
	mu       sync.Mutex
	products map[domain.ProductID]*memProduct

	// SaveErr, when set, is returned by every Save call.
	SaveErr error
	// GetCalls counts GetByID invocations.
	GetCalls int
	// SaveCalls counts Save invocations.
	SaveCalls int
}

// NewMemProductRepo creates an empty in-memory repository.
func NewMemProductRepo() *MemProductRepo {
	return &MemProductRepo{products: make(map[domain.ProductID]*memProduct)}
}

// GetByID returns a reconstructed snapshot of the stored product.
func (r *MemProductRepo) GetByID(ctx context.Context, productID domain.ProductID) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.GetCalls++

	stored, ok := r.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return r.reconstruct(stored), nil
}

// ListByCountry streams stored products for the country, ordered by id.
func (r *MemProductRepo) ListByCountry(ctx context.Context, country domain.Country, fn func(*domain.Product) error) error {
	r.mu.Lock()
	snapshots := make([]*domain.Product, 0, len(r.products))
	for _, stored := range r.products {
		if stored.product.Country().Code() == country.Code() {
			snapshots = append(snapshots, r.reconstruct(stored))
		}
	}
	r.mu.Unlock()

	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].ID() < snapshots[j].ID() })
	for _, p := range snapshots {
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}

// Save inserts the product row when the aggregate is new and one row per
// pending discount. The whole call succeeds or fails as a unit.
func (r *MemProductRepo) Save(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.SaveCalls++

	if r.SaveErr != nil {
		return r.SaveErr
	}

	stored, exists := r.products[product.ID()]
	if product.IsNew() {
		if exists {
			return domain.ErrProductAlreadyExists
		}
		stored = &memProduct{
			product:   product,
			discounts: make(map[domain.DiscountID]domain.AppliedDiscount),
		}
	} else if !exists {
		return domain.ErrProductNotFound
	}

	pending := product.PendingDiscounts()
	for _, d := range pending {
		if _, dup := stored.discounts[d.ID()]; dup {
			return &domain.DiscountConflictError{ProductID: product.ID(), DiscountID: d.ID()}
		}
	}
	for _, d := range pending {
		stored.discounts[d.ID()] = d
	}
	r.products[product.ID()] = stored
	return nil
}

func (r *MemProductRepo) reconstruct(stored *memProduct) *domain.Product {
	discounts := make([]domain.AppliedDiscount, 0, len(stored.discounts))
	for _, d := range stored.discounts {
		discounts = append(discounts, d)
	}
	p := stored.product
	return domain.ReconstructProduct(p.ID(), p.Name(), p.BasePrice(), p.Country(), p.CreatedAt(), discounts)
}
