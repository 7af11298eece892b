package create_product

import (
	"context"

	"github.com/google/uuid"

	"github.com/light-bringer/discount-service/internal/app/catalog/contracts"
	"github.com/light-bringer/discount-service/internal/app/catalog/domain"
	"github.com/light-bringer/discount-service/internal/pkg/clock"
)

// Request contains the data needed to create a product. ProductID is
// optional; an id is generated when it is empty.
type Request struct {
	ProductID string
	Name      string
	Price     float64
	Country   string
}

// Interactor handles the create product use case.
type Interactor struct {
	repo  contracts.ProductRepository
	clock clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(repo contracts.ProductRepository, clk clock.Clock) *Interactor {
	return &Interactor{repo: repo, clock: clk}
}

// Execute validates the request, builds the aggregate and persists it.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	rawID := req.ProductID
	if rawID == "" {
		rawID = uuid.New().String()
	}
	productID, err := domain.NewProductID(rawID)
	if err != nil {
		return nil, err
	}

	name, err := domain.NewProductName(req.Name)
	if err != nil {
		return nil, err
	}

	basePrice, err := domain.NewAmount(req.Price)
	if err != nil {
		return nil, err
	}

	country, err := domain.CountryFromCode(req.Country)
	if err != nil {
		return nil, err
	}

	product, err := domain.NewProduct(productID, name, basePrice, country, i.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := i.repo.Save(ctx, product); err != nil {
		return nil, err
	}

	return product.MarkPersisted(), nil
}
