package m_discount

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the applied_discounts
// table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a discount row. A
// plain Insert is used so a duplicate (product_id, discount_id) pair fails
// the commit with AlreadyExists instead of silently overwriting.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		ReadColumns(),
		[]interface{}{
			data.ProductID,
			data.DiscountID,
			data.Percent,
			data.AppliedAt,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a discount row.
func (m *Model) DeleteMut(productID, discountID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID, discountID})
}
