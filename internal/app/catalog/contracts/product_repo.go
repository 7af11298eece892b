package contracts

import (
	"context"

	"github.com/light-bringer/discount-service/internal/app/catalog/domain"
)

// ProductRepository is the persistence port for the catalog.
//
// Save is the idempotency boundary: the implementation must enforce a
// uniqueness constraint on (product id, discount id) at the storage level
// and report a violation as a domain.DiscountConflictError, never as a
// generic failure. Implementations must be safe for arbitrarily many
// concurrent callers without external coordination.
type ProductRepository interface {
	// GetByID fetches a product and its full discount set in one logical
	// read. Returns domain.ErrProductNotFound when the id is absent.
	GetByID(ctx context.Context, productID domain.ProductID) (*domain.Product, error)

	// ListByCountry streams every product whose country matches, invoking
	// fn for each reconstructed aggregate. The sequence is finite and not
	// restartable; fn returning an error stops the stream and propagates.
	ListByCountry(ctx context.Context, country domain.Country, fn func(*domain.Product) error) error

	// Save inserts the product row when the aggregate is new and one row
	// per pending discount, atomically. Rows of an existing product are
	// never updated. A uniqueness violation surfaces as
	// domain.DiscountConflictError (or domain.ErrProductAlreadyExists for
	// the product row); anything else as a domain.StorageError.
	Save(ctx context.Context, product *domain.Product) error
}
