package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hashicorp/go-hclog"

	"github.com/light-bringer/discount-service/internal/app/catalog/domain"
)

// writeDomainError maps a core error to an HTTP status. Validation failures
// are client errors, conflicts mean the discount is already in place, and
// storage failures stay opaque to the caller.
func writeDomainError(w http.ResponseWriter, logger hclog.Logger, err error) {
	var conflictErr *domain.DiscountConflictError

	switch {
	case domain.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrProductNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "product not found"})

	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: conflictErr.Error()})

	case errors.Is(err, domain.ErrProductAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "product already exists"})

	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
