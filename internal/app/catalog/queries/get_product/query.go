package get_product

import (
	"context"

	"github.com/light-bringer/discount-service/internal/app/catalog/contracts"
	"github.com/light-bringer/discount-service/internal/app/catalog/domain"
	"github.com/light-bringer/discount-service/internal/app/catalog/domain/services"
)

// Request contains the product id to fetch.
type Request struct {
	ProductID string
}

// Query handles the get product query.
type Query struct {
	repo    contracts.ProductRepository
	pricing *services.PricingCalculator
}

// NewQuery creates a new get product query.
func NewQuery(repo contracts.ProductRepository, pricing *services.PricingCalculator) *Query {
	return &Query{repo: repo, pricing: pricing}
}

// Execute retrieves one product with its calculated final price.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductView, error) {
	productID, err := domain.NewProductID(req.ProductID)
	if err != nil {
		return nil, err
	}

	product, err := q.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return contracts.NewProductView(product, q.pricing.FinalPrice(product)), nil
}
