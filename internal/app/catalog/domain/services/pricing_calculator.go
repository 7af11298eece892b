package services

import (
	"math/big"

	"github.com/light-bringer/discount-service/internal/app/catalog/domain"
)

var hundred = big.NewRat(100, 1)

// PricingCalculator is a domain service computing tax-inclusive final
// prices. Discount percentages stack additively, not compounding, and the
// total is deliberately not clamped at 100: stacked discounts beyond 100%
// yield a zero or negative price.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// FinalPrice computes basePrice * (1 - totalDiscount/100) * (1 + vat/100).
func (pc *PricingCalculator) FinalPrice(product *domain.Product) *domain.Money {
	total := pc.TotalDiscountPercent(product)

	// (100 - total) / 100
	discountFactor := new(big.Rat).Quo(new(big.Rat).Sub(hundred, total), hundred)

	return product.BasePrice().
		MultiplyByRat(discountFactor).
		MultiplyByRat(product.Country().VATFactor())
}

// TotalDiscountPercent sums the applied discount percentages.
func (pc *PricingCalculator) TotalDiscountPercent(product *domain.Product) *big.Rat {
	total := new(big.Rat)
	for _, d := range product.Discounts() {
		total.Add(total, d.Percent().Rat())
	}
	return total
}
