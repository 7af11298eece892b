package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/light-bringer/discount-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/discount-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/discount-service/internal/app/catalog/usecases/apply_discount"
	"github.com/light-bringer/discount-service/internal/app/catalog/usecases/create_product"
)

// ProductHandler is a thin coordinator mapping HTTP requests onto use
// cases and queries.
type ProductHandler struct {
	createProduct *create_product.Interactor
	applyDiscount *apply_discount.Interactor
	getProduct    *get_product.Query
	listProducts  *list_products.Query

	view       *viewMapper
	validation *Validation
	logger     hclog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(
	createProduct *create_product.Interactor,
	applyDiscount *apply_discount.Interactor,
	getProduct *get_product.Query,
	listProducts *list_products.Query,
	validation *Validation,
	logger hclog.Logger,
) *ProductHandler {
	return &ProductHandler{
		createProduct: createProduct,
		applyDiscount: applyDiscount,
		getProduct:    getProduct,
		listProducts:  listProducts,
		view:          newViewMapper(),
		validation:    validation,
		logger:        logger,
	}
}

// ListProducts handles GET /api/v1/products?country=SE.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	views, err := h.listProducts.Execute(r.Context(), &list_products.Request{
		CountryCode: r.URL.Query().Get("country"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, listProductsResponse{Products: views})
}

// GetProduct handles GET /api/v1/products/{id}.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	view, err := h.getProduct.Execute(r.Context(), &get_product.Request{
		ProductID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// CreateProduct handles POST /api/v1/products.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if err := h.validation.Validate(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	product, err := h.createProduct.Execute(r.Context(), &create_product.Request{
		ProductID: req.ID,
		Name:      req.Name,
		Price:     req.Price,
		Country:   req.Country,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.view.toView(product))
}

// ApplyDiscount handles POST /api/v1/products/{id}/discounts.
func (h *ProductHandler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	var req applyDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if err := h.validation.Validate(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	product, err := h.applyDiscount.Execute(r.Context(), &apply_discount.Request{
		ProductID:  mux.Vars(r)["id"],
		DiscountID: req.DiscountID,
		Percent:    req.Percent,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, h.view.toView(product))
}
