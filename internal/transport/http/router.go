package http

import (
	"github.com/gorilla/mux"
)

// NewRouter wires the product routes with the middleware chain.
func NewRouter(ph *ProductHandler, mw *Middleware) *mux.Router {
	router := mux.NewRouter()

	router.Use(mw.Logging)
	router.Use(mw.RateLimit)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/products", ph.ListProducts).Methods("GET")
	api.HandleFunc("/products", ph.CreateProduct).Methods("POST")
	api.HandleFunc("/products/{id}", ph.GetProduct).Methods("GET")
	api.HandleFunc("/products/{id}/discounts", ph.ApplyDiscount).Methods("POST")

	return router
}
