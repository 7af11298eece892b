package http

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/light-bringer/discount-service/internal/app/catalog/domain"
)

// Validation wraps the request-body validator. It checks shape only; the
// domain layer remains the authority on semantics.
type Validation struct {
	validator *validator.Validate
}

// NewValidation creates a Validation with the custom tags registered.
func NewValidation() *Validation {
	v := validator.New()
	v.RegisterValidation("countrycode", validateCountryCode)
	return &Validation{validator: v}
}

func validateCountryCode(fl validator.FieldLevel) bool {
	_, err := domain.CountryFromCode(fl.Field().String())
	return err == nil
}

// Validate checks a request struct against its validate tags. It returns a
// caller-facing error naming the first offending field.
func (v *Validation) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}
	validationErrors := err.(validator.ValidationErrors)
	ve := validationErrors[0]
	return fmt.Errorf("field %q failed on the %q rule", ve.Field(), ve.Tag())
}
