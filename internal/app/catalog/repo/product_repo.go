package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/hashicorp/go-hclog"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/discount-service/internal/app/catalog/contracts"
	"github.com/light-bringer/discount-service/internal/app/catalog/domain"
	"github.com/light-bringer/discount-service/internal/models/m_discount"
	"github.com/light-bringer/discount-service/internal/models/m_product"
	"github.com/light-bringer/discount-service/internal/pkg/clock"
	"github.com/light-bringer/discount-service/internal/pkg/committer"
	"github.com/light-bringer/discount-service/internal/pkg/query"
)

// Options configures repository behavior.
type Options struct {
	// Strict makes ListByCountry fail the whole stream when a row cannot
	// be reconstructed. The default is to drop the row and log a warning.
	Strict bool
}

// ProductRepo implements contracts.ProductRepository on Cloud Spanner.
//
// Save relies on the composite primary key of applied_discounts: inserting
// a duplicate (product_id, discount_id) pair fails the commit with
// AlreadyExists, which is translated into the domain conflict. The store
// serializes racing commits, so of N simultaneous applications of the same
// pair exactly one wins.
type ProductRepo struct {
	client        *spanner.Client
	committer     *committer.Committer
	productModel  *m_product.Model
	discountModel *m_discount.Model
	clock         clock.Clock
	logger        hclog.Logger
	strict        bool
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client, clk clock.Clock, logger hclog.Logger, opts Options) contracts.ProductRepository {
	return &ProductRepo{
		client:        client,
		committer:     committer.NewCommitter(client),
		productModel:  m_product.NewModel(),
		discountModel: m_discount.NewModel(),
		clock:         clk,
		logger:        logger,
		strict:        opts.Strict,
	}
}

// GetByID retrieves a product and its discount set in one consistent read.
func (r *ProductRepo) GetByID(ctx context.Context, productID domain.ProductID) (*domain.Product, error) {
	txn := r.client.ReadOnlyTransaction()
	defer txn.Close()

	row, err := txn.ReadRow(ctx, m_product.TableName, spanner.Key{productID.String()}, m_product.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, &domain.StorageError{Op: "read product", Err: err}
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, &domain.StorageError{Op: "decode product", Err: err}
	}

	discounts, err := r.readDiscounts(ctx, txn, data.ProductID)
	if err != nil {
		return nil, err
	}

	product, err := r.dataToDomain(&data, discounts)
	if err != nil {
		return nil, &domain.StorageError{Op: "reconstruct product", Err: err}
	}
	return product, nil
}

// ListByCountry streams every product of the given country. Rows that
// cannot be reconstructed are dropped and logged, unless the repository
// was built with Options.Strict.
func (r *ProductRepo) ListByCountry(ctx context.Context, country domain.Country, fn func(*domain.Product) error) error {
	txn := r.client.ReadOnlyTransaction()
	defer txn.Close()

	stmt := query.From(m_product.TableName).
		Select(m_product.ReadColumns()...).
		Where(query.Eq(m_product.Country, country.Code())).
		OrderBy(m_product.CreatedAt, query.Asc).
		Build()

	rows, err := r.collectProductRows(ctx, txn, stmt)
	if err != nil {
		return err
	}

	for _, data := range rows {
		discounts, err := r.readDiscounts(ctx, txn, data.ProductID)
		if err != nil {
			return err
		}

		product, err := r.dataToDomain(data, discounts)
		if err != nil {
			if r.strict {
				return &domain.StorageError{Op: "reconstruct product", Err: err}
			}
			r.logger.Warn("dropping unreconstructable product row",
				"product_id", data.ProductID, "error", err)
			continue
		}

		if err := fn(product); err != nil {
			return err
		}
	}
	return nil
}

// Save commits the product row (when new) and every pending discount row
// atomically. It is attempted at most once; a lost race surfaces as a
// conflict, which is a final outcome, not a fault to retry.
func (r *ProductRepo) Save(ctx context.Context, product *domain.Product) error {
	plan := committer.NewPlan()

	if product.IsNew() {
		data, err := r.domainToData(product)
		if err != nil {
			return &domain.StorageError{Op: "encode product", Err: err}
		}
		plan.Add(r.productModel.InsertMut(data))
	}

	pending := product.PendingDiscounts()
	now := r.clock.Now()
	for _, d := range pending {
		plan.Add(r.discountModel.InsertMut(&m_discount.Data{
			ProductID:  product.ID().String(),
			DiscountID: d.ID().String(),
			Percent:    d.Percent().Float64(),
			AppliedAt:  now,
		}))
	}

	if plan.IsEmpty() {
		return nil
	}

	if err := r.committer.Apply(ctx, plan); err != nil {
		return r.classifySaveError(product, pending, err)
	}
	return nil
}

// classifySaveError translates a failed commit into the domain taxonomy.
func (r *ProductRepo) classifySaveError(product *domain.Product, pending []domain.AppliedDiscount, err error) error {
	switch spanner.ErrCode(err) {
	case codes.AlreadyExists:
		// A new aggregate can only collide on its own row; an existing one
		// only on a discount row. When several discounts are pending the
		// first pair is reported.
		if product.IsNew() {
			return domain.ErrProductAlreadyExists
		}
		if len(pending) > 0 {
			return &domain.DiscountConflictError{
				ProductID:  product.ID(),
				DiscountID: pending[0].ID(),
			}
		}
		return domain.ErrProductAlreadyExists
	case codes.NotFound:
		// Discount rows are interleaved in products; inserting a child for
		// a deleted parent fails this way.
		return domain.ErrProductNotFound
	default:
		return &domain.StorageError{Op: "save product", Err: err}
	}
}

// collectProductRows drains a product query into decoded rows.
func (r *ProductRepo) collectProductRows(ctx context.Context, txn *spanner.ReadOnlyTransaction, stmt spanner.Statement) ([]*m_product.Data, error) {
	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	rows := make([]*m_product.Data, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &domain.StorageError{Op: "query products", Err: err}
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, &domain.StorageError{Op: "decode product", Err: err}
		}
		rows = append(rows, &data)
	}
	return rows, nil
}

// readDiscounts reads every discount row of a product within the given
// transaction.
func (r *ProductRepo) readDiscounts(ctx context.Context, txn *spanner.ReadOnlyTransaction, productID string) ([]*m_discount.Data, error) {
	iter := txn.Read(ctx, m_discount.TableName, spanner.Key{productID}.AsPrefix(), m_discount.ReadColumns())
	defer iter.Stop()

	rows := make([]*m_discount.Data, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &domain.StorageError{Op: "read discounts", Err: err}
		}

		var data m_discount.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, &domain.StorageError{Op: "decode discount", Err: err}
		}
		rows = append(rows, &data)
	}
	return rows, nil
}

// domainToData converts a domain Product to a products row.
func (r *ProductRepo) domainToData(product *domain.Product) (*m_product.Data, error) {
	basePrice := product.BasePrice()
	num, ok := basePrice.Numerator()
	if !ok {
		return nil, fmt.Errorf("base price numerator exceeds storage capacity")
	}
	denom, ok := basePrice.Denominator()
	if !ok {
		return nil, fmt.Errorf("base price denominator exceeds storage capacity")
	}

	return &m_product.Data{
		ProductID:            product.ID().String(),
		Name:                 product.Name().String(),
		BasePriceNumerator:   num,
		BasePriceDenominator: denom,
		Country:              product.Country().Code(),
		CreatedAt:            product.CreatedAt(),
	}, nil
}

// dataToDomain reconstructs a domain Product from its rows.
func (r *ProductRepo) dataToDomain(data *m_product.Data, discountRows []*m_discount.Data) (*domain.Product, error) {
	productID, err := domain.NewProductID(data.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	name, err := domain.NewProductName(data.Name)
	if err != nil {
		return nil, fmt.Errorf("invalid product name: %w", err)
	}

	basePrice, err := domain.NewMoney(data.BasePriceNumerator, data.BasePriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid base price: %w", err)
	}

	country, err := domain.CountryFromCode(data.Country)
	if err != nil {
		return nil, fmt.Errorf("invalid country: %w", err)
	}

	discounts := make([]domain.AppliedDiscount, 0, len(discountRows))
	for _, row := range discountRows {
		percent, err := domain.NewPercent(row.Percent)
		if err != nil {
			return nil, fmt.Errorf("invalid discount %s: %w", row.DiscountID, err)
		}
		discounts = append(discounts, domain.ReconstructAppliedDiscount(domain.DiscountID(row.DiscountID), percent))
	}

	return domain.ReconstructProduct(productID, name, basePrice, country, data.CreatedAt, discounts), nil
}
