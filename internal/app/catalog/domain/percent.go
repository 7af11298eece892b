package domain

import (
	"math"
	"math/big"
)

// Percent is a percentage in the closed interval [0, 100].
type Percent struct {
	rat *big.Rat
}

// NewPercent validates a raw percentage.
func NewPercent(value float64) (Percent, error) {
	if math.IsNaN(value) || value < 0 || value > 100 {
		return Percent{}, &InvalidPercentError{Value: value}
	}
	return Percent{rat: new(big.Rat).SetFloat64(value)}, nil
}

// Rat returns the value as a rational number.
func (p Percent) Rat() *big.Rat {
	if p.rat == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.rat)
}

// Float64 returns an approximate float64 representation.
func (p Percent) Float64() float64 {
	if p.rat == nil {
		return 0
	}
	f, _ := p.rat.Float64()
	return f
}
