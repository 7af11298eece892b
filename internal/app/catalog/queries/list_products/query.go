package list_products

import (
	"context"

	"github.com/light-bringer/discount-service/internal/app/catalog/contracts"
	"github.com/light-bringer/discount-service/internal/app/catalog/domain"
	"github.com/light-bringer/discount-service/internal/app/catalog/domain/services"
)

// Request contains the country filter.
type Request struct {
	CountryCode string
}

// Query handles the list products by country query.
type Query struct {
	repo    contracts.ProductRepository
	pricing *services.PricingCalculator
}

// NewQuery creates a new list products query.
func NewQuery(repo contracts.ProductRepository, pricing *services.PricingCalculator) *Query {
	return &Query{repo: repo, pricing: pricing}
}

// Execute validates the country code and streams matching products, mapping
// each to a presentation record with its calculated final price. Validation
// failure short-circuits before any storage access.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductView, error) {
	country, err := domain.CountryFromCode(req.CountryCode)
	if err != nil {
		return nil, err
	}

	views := make([]*contracts.ProductView, 0)
	err = q.repo.ListByCountry(ctx, country, func(product *domain.Product) error {
		views = append(views, contracts.NewProductView(product, q.pricing.FinalPrice(product)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
