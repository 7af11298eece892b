package m_discount

// Field name constants for the applied_discounts table. The composite
// primary key (product_id, discount_id) is the uniqueness constraint that
// adjudicates concurrent discount applications.
const (
	TableName = "applied_discounts"

	ProductID  = "product_id"
	DiscountID = "discount_id"
	Percent    = "percent"
	AppliedAt  = "applied_at"
)

// ReadColumns lists every column, in the order Data expects them.
func ReadColumns() []string {
	return []string{
		ProductID,
		DiscountID,
		Percent,
		AppliedAt,
	}
}
