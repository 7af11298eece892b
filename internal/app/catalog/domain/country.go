package domain

import (
	"math/big"
	"strings"
)

// Country is a closed enumeration of the markets the catalog serves. Each
// variant carries its two-letter code and VAT rate. The zero value is not a
// valid country; instances come from CountryFromCode or the exported
// variables below.
type Country struct {
	code       string
	name       string
	vatPercent int64
}

var (
	Sweden  = Country{code: "SE", name: "Sweden", vatPercent: 25}
	Germany = Country{code: "DE", name: "Germany", vatPercent: 19}
	France  = Country{code: "FR", name: "France", vatPercent: 20}
)

var countriesByCode = map[string]Country{
	Sweden.code:  Sweden,
	Germany.code: Germany,
	France.code:  France,
}

// CountryFromCode resolves a two-letter country code, case-insensitively.
// Full country names are rejected; only codes are accepted.
func CountryFromCode(raw string) (Country, error) {
	c, ok := countriesByCode[strings.ToUpper(raw)]
	if !ok {
		return Country{}, &InvalidCountryError{Code: raw}
	}
	return c, nil
}

// Code returns the two-letter country code.
func (c Country) Code() string { return c.code }

// Name returns the country's display name.
func (c Country) Name() string { return c.name }

// VATPercent returns the VAT rate as a whole percentage.
func (c Country) VATPercent() int64 { return c.vatPercent }

// VATFactor returns (1 + vat/100), the multiplicative tax factor.
func (c Country) VATFactor() *big.Rat {
	return big.NewRat(100+c.vatPercent, 100)
}
