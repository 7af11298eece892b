package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T) *Product {
	t.Helper()

	id, err := NewProductID("p-1")
	require.NoError(t, err)
	name, err := NewProductName("Laptop")
	require.NoError(t, err)
	price, err := NewMoney(1000, 1)
	require.NoError(t, err)

	product, err := NewProduct(id, name, price, Sweden, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return product
}

func TestNewProduct(t *testing.T) {
	t.Run("new product is pending persistence", func(t *testing.T) {
		p := newTestProduct(t)
		assert.True(t, p.IsNew())
		assert.Empty(t, p.Discounts())
	})

	t.Run("non-positive price returns error", func(t *testing.T) {
		id, _ := NewProductID("p-1")
		name, _ := NewProductName("Laptop")
		zero, _ := NewMoney(0, 1)
		_, err := NewProduct(id, name, zero, Sweden, time.Now())
		assert.Error(t, err)
	})
}

func TestProduct_ApplyDiscount(t *testing.T) {
	product := newTestProduct(t)
	discount, err := NewAppliedDiscount("summer-sale", 10)
	require.NoError(t, err)

	t.Run("adds discount and marks it pending", func(t *testing.T) {
		updated, err := product.ApplyDiscount(discount)
		require.NoError(t, err)

		assert.True(t, updated.HasDiscount("summer-sale"))
		require.Len(t, updated.PendingDiscounts(), 1)
		assert.Equal(t, DiscountID("summer-sale"), updated.PendingDiscounts()[0].ID())
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		_, err := product.ApplyDiscount(discount)
		require.NoError(t, err)
		assert.False(t, product.HasDiscount("summer-sale"))
		assert.Empty(t, product.PendingDiscounts())
	})

	t.Run("same id twice is a conflict", func(t *testing.T) {
		updated, err := product.ApplyDiscount(discount)
		require.NoError(t, err)

		samePercent := discount
		_, err = updated.ApplyDiscount(samePercent)
		var conflict *DiscountConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, ProductID("p-1"), conflict.ProductID)
		assert.Equal(t, DiscountID("summer-sale"), conflict.DiscountID)
	})

	t.Run("same id with different percent is still a conflict", func(t *testing.T) {
		updated, err := product.ApplyDiscount(discount)
		require.NoError(t, err)

		other, err := NewAppliedDiscount("summer-sale", 20)
		require.NoError(t, err)
		_, err = updated.ApplyDiscount(other)
		var conflict *DiscountConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("distinct ids stack", func(t *testing.T) {
		updated, err := product.ApplyDiscount(discount)
		require.NoError(t, err)

		second, err := NewAppliedDiscount("winter-sale", 20)
		require.NoError(t, err)
		updated, err = updated.ApplyDiscount(second)
		require.NoError(t, err)

		assert.Len(t, updated.Discounts(), 2)
		assert.Len(t, updated.PendingDiscounts(), 2)
	})
}

func TestProduct_MarkPersisted(t *testing.T) {
	product := newTestProduct(t)
	discount, _ := NewAppliedDiscount("summer-sale", 10)

	updated, err := product.ApplyDiscount(discount)
	require.NoError(t, err)

	persisted := updated.MarkPersisted()
	assert.False(t, persisted.IsNew())
	assert.Empty(t, persisted.PendingDiscounts())
	assert.True(t, persisted.HasDiscount("summer-sale"))
}

func TestReconstructProduct(t *testing.T) {
	id, _ := NewProductID("p-1")
	name, _ := NewProductName("Laptop")
	price, _ := NewMoney(1000, 1)
	pct, _ := NewPercent(10)
	discounts := []AppliedDiscount{ReconstructAppliedDiscount("summer-sale", pct)}

	product := ReconstructProduct(id, name, price, Germany, time.Now(), discounts)

	assert.False(t, product.IsNew())
	assert.Empty(t, product.PendingDiscounts())
	assert.True(t, product.HasDiscount("summer-sale"))
	assert.Equal(t, Germany, product.Country())
}

func TestProduct_DiscountsOrderedByID(t *testing.T) {
	product := newTestProduct(t)

	for _, id := range []string{"c", "a", "b"} {
		d, err := NewAppliedDiscount(id, 5)
		require.NoError(t, err)
		product, err = product.ApplyDiscount(d)
		require.NoError(t, err)
	}

	discounts := product.Discounts()
	require.Len(t, discounts, 3)
	assert.Equal(t, DiscountID("a"), discounts[0].ID())
	assert.Equal(t, DiscountID("b"), discounts[1].ID())
	assert.Equal(t, DiscountID("c"), discounts[2].ID())
}
