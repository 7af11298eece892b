package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/light-bringer/discount-service/internal/app/catalog/domain/services"
	"github.com/light-bringer/discount-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/discount-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/discount-service/internal/app/catalog/repo"
	"github.com/light-bringer/discount-service/internal/app/catalog/usecases/apply_discount"
	"github.com/light-bringer/discount-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/discount-service/internal/pkg/clock"
	httptransport "github.com/light-bringer/discount-service/internal/transport/http"
)

// Config holds the tunables NewServiceOptions needs beyond the database.
type Config struct {
	SpannerDB     string
	StrictListing bool
	RatePerSecond float64
	RateBurst     int
}

// ServiceOptions holds all wired dependencies of the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Router        *mux.Router
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg Config, logger hclog.Logger) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	clk := clock.NewRealClock()
	pricing := services.NewPricingCalculator()

	productRepo := repo.NewProductRepo(spannerClient, clk, logger.Named("repo"), repo.Options{
		Strict: cfg.StrictListing,
	})

	createProductUseCase := create_product.NewInteractor(productRepo, clk)
	applyDiscountUseCase := apply_discount.NewInteractor(productRepo)
	getProductQuery := get_product.NewQuery(productRepo, pricing)
	listProductsQuery := list_products.NewQuery(productRepo, pricing)

	handler := httptransport.NewProductHandler(
		createProductUseCase,
		applyDiscountUseCase,
		getProductQuery,
		listProductsQuery,
		httptransport.NewValidation(),
		logger.Named("http"),
	)
	middleware := httptransport.NewMiddleware(logger.Named("http"), cfg.RatePerSecond, cfg.RateBurst)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Router:        httptransport.NewRouter(handler, middleware),
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
