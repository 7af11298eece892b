package contracts

import (
	"time"

	"github.com/light-bringer/discount-service/internal/app/catalog/domain"
)

// DiscountView is the presentation record for an applied discount.
type DiscountView struct {
	DiscountID string  `json:"discount_id"`
	Percent    float64 `json:"percent"`
}

// ProductView is the presentation record for a product, carrying its
// calculated tax-inclusive final price. Prices are approximate float64
// representations for display; the domain keeps exact values.
type ProductView struct {
	ProductID  string         `json:"product_id"`
	Name       string         `json:"name"`
	Country    string         `json:"country"`
	BasePrice  float64        `json:"base_price"`
	FinalPrice float64        `json:"final_price"`
	Discounts  []DiscountView `json:"discounts"`
	CreatedAt  time.Time      `json:"created_at"`
}

// NewProductView maps a domain aggregate and its computed final price to a
// presentation record.
func NewProductView(product *domain.Product, finalPrice *domain.Money) *ProductView {
	discounts := product.Discounts()
	views := make([]DiscountView, 0, len(discounts))
	for _, d := range discounts {
		views = append(views, DiscountView{
			DiscountID: d.ID().String(),
			Percent:    d.Percent().Float64(),
		})
	}
	return &ProductView{
		ProductID:  product.ID().String(),
		Name:       product.Name().String(),
		Country:    product.Country().Code(),
		BasePrice:  product.BasePrice().Float64(),
		FinalPrice: finalPrice.Float64(),
		Discounts:  views,
		CreatedAt:  product.CreatedAt(),
	}
}
