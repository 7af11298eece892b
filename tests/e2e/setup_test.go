//go:build integration

package e2e

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/hashicorp/go-hclog"

	"github.com/light-bringer/discount-service/internal/app/catalog/contracts"
	"github.com/light-bringer/discount-service/internal/app/catalog/domain/services"
	"github.com/light-bringer/discount-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/discount-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/discount-service/internal/app/catalog/repo"
	"github.com/light-bringer/discount-service/internal/app/catalog/usecases/apply_discount"
	"github.com/light-bringer/discount-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/discount-service/internal/pkg/clock"
	"github.com/light-bringer/discount-service/tests/testutil"
)

// Services holds the use cases and queries under test.
type Services struct {
	CreateProduct *create_product.Interactor
	ApplyDiscount *apply_discount.Interactor

	GetProduct   *get_product.Query
	ListProducts *list_products.Query

	Repo   contracts.ProductRepository
	Client *spanner.Client
}

// setupTest initializes all dependencies against a clean database.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := clock.NewRealClock()
	logger := hclog.NewNullLogger()
	productRepo := repo.NewProductRepo(client, clk, logger, repo.Options{})
	pricing := services.NewPricingCalculator()

	return &Services{
		CreateProduct: create_product.NewInteractor(productRepo, clk),
		ApplyDiscount: apply_discount.NewInteractor(productRepo),
		GetProduct:    get_product.NewQuery(productRepo, pricing),
		ListProducts:  list_products.NewQuery(productRepo, pricing),
		Repo:          productRepo,
		Client:        client,
	}, cleanup
}

func ctx() context.Context {
	return context.Background()
}
