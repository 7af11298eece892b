package apply_discount

import (
	"context"

	"github.com/light-bringer/discount-service/internal/app/catalog/contracts"
	"github.com/light-bringer/discount-service/internal/app/catalog/domain"
)

// Request contains the data to apply a discount.
type Request struct {
	ProductID  string
	DiscountID string
	Percent    float64
}

// Interactor handles the apply discount use case.
type Interactor struct {
	repo contracts.ProductRepository
}

// NewInteractor creates a new apply discount interactor.
func NewInteractor(repo contracts.ProductRepository) *Interactor {
	return &Interactor{repo: repo}
}

// Execute validates the request, loads the aggregate, applies the discount
// in memory and saves. Each stage short-circuits on the first failure, and
// the save is attempted exactly once: a conflict from storage is the final
// outcome of a lost race, never retried here.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	productID, err := domain.NewProductID(req.ProductID)
	if err != nil {
		return nil, err
	}

	discount, err := domain.NewAppliedDiscount(req.DiscountID, req.Percent)
	if err != nil {
		return nil, err
	}

	product, err := i.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	updated, err := product.ApplyDiscount(discount)
	if err != nil {
		return nil, err
	}

	if err := i.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	return updated.MarkPersisted(), nil
}
