package m_product

import "time"

// Data represents a row of the products table.
type Data struct {
	ProductID            string    `spanner:"product_id"`
	Name                 string    `spanner:"name"`
	BasePriceNumerator   int64     `spanner:"base_price_numerator"`
	BasePriceDenominator int64     `spanner:"base_price_denominator"`
	Country              string    `spanner:"country"`
	CreatedAt            time.Time `spanner:"created_at"`
}
