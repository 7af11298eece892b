package m_discount

import "time"

// Data represents a row of the applied_discounts table.
type Data struct {
	ProductID  string    `spanner:"product_id"`
	DiscountID string    `spanner:"discount_id"`
	Percent    float64   `spanner:"percent"`
	AppliedAt  time.Time `spanner:"applied_at"`
}
