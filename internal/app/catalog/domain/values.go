package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the upper bound for product names.
const MaxNameLength = 255

// ProductID identifies a product. It is opaque to the domain; callers own
// its format.
type ProductID string

// NewProductID validates a raw product id.
func NewProductID(raw string) (ProductID, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrBlankProductID
	}
	return ProductID(raw), nil
}

func (id ProductID) String() string { return string(id) }

// DiscountID identifies a discount campaign. Equality of applied discounts
// is defined on this id alone.
type DiscountID string

// NewDiscountID validates a raw discount id.
func NewDiscountID(raw string) (DiscountID, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrBlankDiscountID
	}
	return DiscountID(raw), nil
}

func (id DiscountID) String() string { return string(id) }

// ProductName is a display label, non-blank and at most MaxNameLength
// characters.
type ProductName string

// NewProductName validates a raw product name.
func NewProductName(raw string) (ProductName, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrBlankName
	}
	if n := utf8.RuneCountInString(raw); n > MaxNameLength {
		return "", &NameTooLongError{Length: n}
	}
	return ProductName(raw), nil
}

func (n ProductName) String() string { return string(n) }
