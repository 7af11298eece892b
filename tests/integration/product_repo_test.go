//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/discount-service/internal/app/catalog/domain"
	"github.com/light-bringer/discount-service/internal/app/catalog/repo"
	"github.com/light-bringer/discount-service/internal/pkg/clock"
	"github.com/light-bringer/discount-service/tests/testutil"
)

func newProduct(t *testing.T, rawID string, country domain.Country) *domain.Product {
	t.Helper()

	id, err := domain.NewProductID(rawID)
	require.NoError(t, err)
	name, err := domain.NewProductName("Test Product")
	require.NoError(t, err)
	price, err := domain.NewMoney(249900, 100)
	require.NoError(t, err)
	product, err := domain.NewProduct(id, name, price, country, time.Now().UTC())
	require.NoError(t, err)
	return product
}

func TestProductRepo_SaveAndGetByID(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewProductRepo(client, clock.NewRealClock(), hclog.NewNullLogger(), repo.Options{})

	productID := uuid.New().String()
	product := newProduct(t, productID, domain.Sweden)

	discount, err := domain.NewAppliedDiscount("summer-sale", 10)
	require.NoError(t, err)
	product, err = product.ApplyDiscount(discount)
	require.NoError(t, err)

	require.NoError(t, repository.Save(ctx, product))

	testutil.AssertRowCount(t, client, "products", 1)
	assert.Equal(t, 1, testutil.CountDiscounts(t, client, productID))

	retrieved, err := repository.GetByID(ctx, domain.ProductID(productID))
	require.NoError(t, err)

	assert.Equal(t, domain.ProductName("Test Product"), retrieved.Name())
	assert.Equal(t, domain.Sweden, retrieved.Country())
	assert.True(t, retrieved.BasePrice().Equals(product.BasePrice()))
	require.Len(t, retrieved.Discounts(), 1)
	assert.True(t, retrieved.HasDiscount("summer-sale"))
	assert.False(t, retrieved.IsNew())
	assert.Empty(t, retrieved.PendingDiscounts())
}

func TestProductRepo_GetByID_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	repository := repo.NewProductRepo(client, clock.NewRealClock(), hclog.NewNullLogger(), repo.Options{})

	_, err := repository.GetByID(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductRepo_Save_DuplicateProduct(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewProductRepo(client, clock.NewRealClock(), hclog.NewNullLogger(), repo.Options{})

	productID := uuid.New().String()
	require.NoError(t, repository.Save(ctx, newProduct(t, productID, domain.Sweden)))

	err := repository.Save(ctx, newProduct(t, productID, domain.Sweden))
	assert.ErrorIs(t, err, domain.ErrProductAlreadyExists)
}

func TestProductRepo_Save_DuplicateDiscount(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewProductRepo(client, clock.NewRealClock(), hclog.NewNullLogger(), repo.Options{})

	productID := uuid.New().String()
	require.NoError(t, repository.Save(ctx, newProduct(t, productID, domain.Sweden)))

	discount, err := domain.NewAppliedDiscount("flash-sale", 15)
	require.NoError(t, err)

	// Two snapshots loaded before either save, as two racing requests
	// would see the aggregate.
	first, err := repository.GetByID(ctx, domain.ProductID(productID))
	require.NoError(t, err)
	second, err := repository.GetByID(ctx, domain.ProductID(productID))
	require.NoError(t, err)

	updated, err := first.ApplyDiscount(discount)
	require.NoError(t, err)
	require.NoError(t, repository.Save(ctx, updated))

	// The stale snapshot passes the in-memory check; the storage
	// constraint rejects the second row.
	stale, err := second.ApplyDiscount(discount)
	require.NoError(t, err)

	err = repository.Save(ctx, stale)
	var conflict *domain.DiscountConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ProductID(productID), conflict.ProductID)
	assert.Equal(t, domain.DiscountID("flash-sale"), conflict.DiscountID)

	assert.Equal(t, 1, testutil.CountDiscounts(t, client, productID))
}

func TestProductRepo_Save_NoPendingChanges(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewProductRepo(client, clock.NewRealClock(), hclog.NewNullLogger(), repo.Options{})

	productID := uuid.New().String()
	require.NoError(t, repository.Save(ctx, newProduct(t, productID, domain.Sweden)))

	loaded, err := repository.GetByID(ctx, domain.ProductID(productID))
	require.NoError(t, err)

	// Nothing staged, nothing to commit.
	assert.NoError(t, repository.Save(ctx, loaded))
	testutil.AssertRowCount(t, client, "products", 1)
}

func TestProductRepo_ListByCountry(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewProductRepo(client, clock.NewRealClock(), hclog.NewNullLogger(), repo.Options{})

	seID := uuid.New().String()
	deID := uuid.New().String()
	require.NoError(t, repository.Save(ctx, newProduct(t, seID, domain.Sweden)))
	require.NoError(t, repository.Save(ctx, newProduct(t, deID, domain.Germany)))

	var ids []string
	err := repository.ListByCountry(ctx, domain.Sweden, func(p *domain.Product) error {
		ids = append(ids, p.ID().String())
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{seID}, ids)
}

func TestProductRepo_ListByCountry_DropsBadRows(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()

	goodID := testutil.CreateTestProduct(t, client, "Good Product", "SE")
	badID := testutil.CreateTestProduct(t, client, "Bad Product", "SE")
	// A percent outside [0, 100] cannot be reconstructed.
	testutil.CreateTestDiscount(t, client, badID, "corrupt", 250)

	t.Run("default drops the bad row", func(t *testing.T) {
		repository := repo.NewProductRepo(client, clock.NewRealClock(), hclog.NewNullLogger(), repo.Options{})

		var ids []string
		err := repository.ListByCountry(ctx, domain.Sweden, func(p *domain.Product) error {
			ids = append(ids, p.ID().String())
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{goodID}, ids)
	})

	t.Run("strict fails the stream", func(t *testing.T) {
		repository := repo.NewProductRepo(client, clock.NewRealClock(), hclog.NewNullLogger(), repo.Options{Strict: true})

		err := repository.ListByCountry(ctx, domain.Sweden, func(p *domain.Product) error {
			return nil
		})
		var storageErr *domain.StorageError
		assert.ErrorAs(t, err, &storageErr)
	})
}
