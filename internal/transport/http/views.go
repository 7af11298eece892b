package http

import (
	"github.com/light-bringer/discount-service/internal/app/catalog/contracts"
	"github.com/light-bringer/discount-service/internal/app/catalog/domain"
	"github.com/light-bringer/discount-service/internal/app/catalog/domain/services"
)

// viewMapper turns domain aggregates returned by the write use cases into
// the same presentation records the queries produce.
type viewMapper struct {
	pricing *services.PricingCalculator
}

func newViewMapper() *viewMapper {
	return &viewMapper{pricing: services.NewPricingCalculator()}
}

func (m *viewMapper) toView(product *domain.Product) *contracts.ProductView {
	return contracts.NewProductView(product, m.pricing.FinalPrice(product))
}
