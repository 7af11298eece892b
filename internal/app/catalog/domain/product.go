package domain

import (
	"sort"
	"time"
)

// Product is the aggregate root. It owns its set of applied discounts,
// keyed by DiscountID, with at most one entry per id. Instances are never
// mutated after construction: ApplyDiscount returns a new value, so loaded
// aggregates are safe to share across concurrent readers.
type Product struct {
	id        ProductID
	name      ProductName
	basePrice *Money
	country   Country
	createdAt time.Time

	discounts map[DiscountID]AppliedDiscount

	// pending holds discounts applied since the aggregate was loaded, in
	// application order. The repository inserts exactly these on Save.
	pending []DiscountID

	// isNew marks an aggregate that has no row in storage yet.
	isNew bool
}

// NewProduct creates a product for first persistence.
func NewProduct(id ProductID, name ProductName, basePrice *Money, country Country, now time.Time) (*Product, error) {
	if basePrice == nil || !basePrice.IsPositive() {
		return nil, &InvalidAmountError{Value: 0}
	}
	return &Product{
		id:        id,
		name:      name,
		basePrice: basePrice.Copy(),
		country:   country,
		createdAt: now,
		discounts: make(map[DiscountID]AppliedDiscount),
		isNew:     true,
	}, nil
}

// ReconstructProduct rebuilds a product from storage. The resulting
// aggregate has no pending discounts.
func ReconstructProduct(
	id ProductID,
	name ProductName,
	basePrice *Money,
	country Country,
	createdAt time.Time,
	discounts []AppliedDiscount,
) *Product {
	set := make(map[DiscountID]AppliedDiscount, len(discounts))
	for _, d := range discounts {
		set[d.ID()] = d
	}
	return &Product{
		id:        id,
		name:      name,
		basePrice: basePrice,
		country:   country,
		createdAt: createdAt,
		discounts: set,
	}
}

// Getters
func (p *Product) ID() ProductID        { return p.id }
func (p *Product) Name() ProductName    { return p.name }
func (p *Product) BasePrice() *Money    { return p.basePrice.Copy() }
func (p *Product) Country() Country     { return p.country }
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// IsNew returns true if the product has not been persisted yet.
func (p *Product) IsNew() bool { return p.isNew }

// HasDiscount reports whether a discount with the given id is applied.
func (p *Product) HasDiscount(id DiscountID) bool {
	_, ok := p.discounts[id]
	return ok
}

// ApplyDiscount returns a new Product with the discount added. It fails
// with a DiscountConflictError when a discount with the same id is already
// present in this snapshot. This in-memory check is a fast path: two
// concurrent loads of the same row can both pass it, and the storage
// uniqueness constraint remains the authoritative arbiter on Save.
func (p *Product) ApplyDiscount(discount AppliedDiscount) (*Product, error) {
	if p.HasDiscount(discount.ID()) {
		return nil, &DiscountConflictError{ProductID: p.id, DiscountID: discount.ID()}
	}
	next := p.copy()
	next.discounts[discount.ID()] = discount
	next.pending = append(next.pending, discount.ID())
	return next, nil
}

// Discounts returns all applied discounts, ordered by discount id.
func (p *Product) Discounts() []AppliedDiscount {
	out := make([]AppliedDiscount, 0, len(p.discounts))
	for _, d := range p.discounts {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// PendingDiscounts returns the discounts applied since load, in
// application order.
func (p *Product) PendingDiscounts() []AppliedDiscount {
	out := make([]AppliedDiscount, 0, len(p.pending))
	for _, id := range p.pending {
		out = append(out, p.discounts[id])
	}
	return out
}

// MarkPersisted returns a new Product with a clean persistence state, as if
// freshly loaded. The repository uses it after a successful Save.
func (p *Product) MarkPersisted() *Product {
	next := p.copy()
	next.pending = nil
	next.isNew = false
	return next
}

func (p *Product) copy() *Product {
	discounts := make(map[DiscountID]AppliedDiscount, len(p.discounts))
	for id, d := range p.discounts {
		discounts[id] = d
	}
	pending := make([]DiscountID, len(p.pending))
	copy(pending, p.pending)
	return &Product{
		id:        p.id,
		name:      p.name,
		basePrice: p.basePrice.Copy(),
		country:   p.country,
		createdAt: p.createdAt,
		discounts: discounts,
		pending:   pending,
		isNew:     p.isNew,
	}
}
