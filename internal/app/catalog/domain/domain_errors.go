package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for failures that carry no extra data.
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product already exists")
	ErrBlankName            = errors.New("product name cannot be blank")
	ErrBlankProductID       = errors.New("product id cannot be blank")
	ErrBlankDiscountID      = errors.New("discount id cannot be blank")
)

// NameTooLongError reports a product name exceeding MaxNameLength.
type NameTooLongError struct {
	Length int
}

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("product name too long: %d characters (max %d)", e.Length, MaxNameLength)
}

// InvalidAmountError reports a monetary amount that is zero, negative or
// not a finite number.
type InvalidAmountError struct {
	Value float64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("amount must be positive, got %v", e.Value)
}

// InvalidPercentError reports a percentage outside [0, 100].
type InvalidPercentError struct {
	Value float64
}

func (e *InvalidPercentError) Error() string {
	return fmt.Sprintf("percent must be between 0 and 100, got %v", e.Value)
}

// InvalidCountryError reports a country code outside the supported set.
type InvalidCountryError struct {
	Code string
}

func (e *InvalidCountryError) Error() string {
	return fmt.Sprintf("unsupported country code %q", e.Code)
}

// DiscountConflictError signals that a discount is already applied to a
// product. It is the expected outcome of losing a race on the storage
// uniqueness constraint, not an infrastructure failure.
type DiscountConflictError struct {
	ProductID  ProductID
	DiscountID DiscountID
}

func (e *DiscountConflictError) Error() string {
	return fmt.Sprintf("discount %s already applied to product %s", e.DiscountID, e.ProductID)
}

// StorageError wraps an unexpected infrastructure failure from the
// persistence layer. The operation may have partially committed, so callers
// must not retry blindly.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err came from input validation, as
// opposed to a domain conflict or an infrastructure failure.
func IsValidationError(err error) bool {
	var (
		nameErr    *NameTooLongError
		amountErr  *InvalidAmountError
		percentErr *InvalidPercentError
		countryErr *InvalidCountryError
	)
	switch {
	case errors.Is(err, ErrBlankName),
		errors.Is(err, ErrBlankProductID),
		errors.Is(err, ErrBlankDiscountID):
		return true
	case errors.As(err, &nameErr),
		errors.As(err, &amountErr),
		errors.As(err, &percentErr),
		errors.As(err, &countryErr):
		return true
	}
	return false
}
