package domain

import (
	"fmt"
	"math"
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic using
// big.Rat. It stores the value as a rational number to avoid floating-point
// drift when discount and VAT factors are composed.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
// Example: NewMoney(249900, 100) represents 2499.00.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// NewAmount validates a caller-supplied amount and converts it to Money.
// The amount must be a finite, strictly positive number.
func NewAmount(value float64) (*Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return nil, &InvalidAmountError{Value: value}
	}
	return &Money{rat: new(big.Rat).SetFloat64(value)}, nil
}

// Numerator returns the numerator of the rational value. The second return
// is false when the value does not fit in an int64.
func (m *Money) Numerator() (int64, bool) {
	return m.rat.Num().Int64(), m.rat.Num().IsInt64()
}

// Denominator returns the denominator of the rational value. The second
// return is false when the value does not fit in an int64.
func (m *Money) Denominator() (int64, bool) {
	return m.rat.Denom().Int64(), m.rat.Denom().IsInt64()
}

// Add returns the sum of two Money values.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract returns the difference of two Money values.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByRat scales the value by a rational factor.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// IsZero returns true if the value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive returns true if the value is positive.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// Equals returns true if both values are numerically equal.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation, for display only.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String formats the value with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
