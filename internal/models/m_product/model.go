package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a product row.
// A plain Insert is used, not InsertOrUpdate: existing rows are never
// touched, and a duplicate key fails the commit with AlreadyExists.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		ReadColumns(),
		[]interface{}{
			data.ProductID,
			data.Name,
			data.BasePriceNumerator,
			data.BasePriceDenominator,
			data.Country,
			data.CreatedAt,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a product row. Discount
// rows are interleaved with ON DELETE CASCADE and go with it.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
