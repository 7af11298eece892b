package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/discount-service/internal/models/m_discount"
	"github.com/light-bringer/discount-service/internal/models/m_product"
)

// CreateTestProduct inserts a product row directly and returns its id.
func CreateTestProduct(t *testing.T, client *spanner.Client, name, country string) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:            productID,
		Name:                 name,
		BasePriceNumerator:   100000,
		BasePriceDenominator: 100,
		Country:              country,
		CreatedAt:            time.Now().UTC(),
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// CreateTestDiscount inserts a discount row for an existing product.
func CreateTestDiscount(t *testing.T, client *spanner.Client, productID, discountID string, percent float64) {
	t.Helper()

	ctx := context.Background()
	model := m_discount.NewModel()
	data := &m_discount.Data{
		ProductID:  productID,
		DiscountID: discountID,
		Percent:    percent,
		AppliedAt:  time.Now().UTC(),
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test discount")
}

// GetProductByID retrieves a product row for verification.
func GetProductByID(t *testing.T, client *spanner.Client, productID string) *m_product.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.ReadColumns())
	require.NoError(t, err, "failed to get product by id")

	var data m_product.Data
	err = row.ToStruct(&data)
	require.NoError(t, err, "failed to parse product data")

	return &data
}

// CountDiscounts returns the number of discount rows for a product.
func CountDiscounts(t *testing.T, client *spanner.Client, productID string) int {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT COUNT(*) FROM applied_discounts WHERE product_id = @productID",
		Params: map[string]interface{}{"productID": productID},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query discount count")

	var count int64
	err = row.Columns(&count)
	require.NoError(t, err, "failed to parse count")

	return int(count)
}
