package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID            = "product_id"
	Name                 = "name"
	BasePriceNumerator   = "base_price_numerator"
	BasePriceDenominator = "base_price_denominator"
	Country              = "country"
	CreatedAt            = "created_at"
)

// ReadColumns lists every column, in the order Data expects them.
func ReadColumns() []string {
	return []string{
		ProductID,
		Name,
		BasePriceNumerator,
		BasePriceDenominator,
		Country,
		CreatedAt,
	}
}
