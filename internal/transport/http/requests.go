package http

// createProductRequest is the body of POST /api/v1/products.
type createProductRequest struct {
	ID      string  `json:"id" validate:"omitempty,max=64"`
	Name    string  `json:"name" validate:"required,max=255"`
	Price   float64 `json:"price" validate:"required,gt=0"`
	Country string  `json:"country" validate:"required,countrycode"`
}

// applyDiscountRequest is the body of POST /api/v1/products/{id}/discounts.
type applyDiscountRequest struct {
	DiscountID string  `json:"discount_id" validate:"required,max=64"`
	Percent    float64 `json:"percent" validate:"gte=0,lte=100"`
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

// listProductsResponse is the body of GET /api/v1/products.
type listProductsResponse struct {
	Products interface{} `json:"products"`
}
