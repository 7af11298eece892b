package domain

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := NewMoney(100, 1)
		require.NoError(t, err)
		num, ok := m.Numerator()
		require.True(t, ok)
		assert.Equal(t, int64(100), num)
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.Error(t, err)
	})
}

func TestNewAmount(t *testing.T) {
	t.Run("positive amount", func(t *testing.T) {
		m, err := NewAmount(49.5)
		require.NoError(t, err)
		assert.Equal(t, 49.5, m.Float64())
	})

	t.Run("zero returns error", func(t *testing.T) {
		_, err := NewAmount(0)
		var invalidErr *InvalidAmountError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, 0.0, invalidErr.Value)
	})

	t.Run("negative returns error", func(t *testing.T) {
		_, err := NewAmount(-10)
		var invalidErr *InvalidAmountError
		assert.ErrorAs(t, err, &invalidErr)
	})

	t.Run("NaN returns error", func(t *testing.T) {
		_, err := NewAmount(math.NaN())
		assert.Error(t, err)
	})

	t.Run("infinity returns error", func(t *testing.T) {
		_, err := NewAmount(math.Inf(1))
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	m1, _ := NewMoney(100, 1)
	m2, _ := NewMoney(50, 1)

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, 150.0, m1.Add(m2).Float64())
	})

	t.Run("subtract", func(t *testing.T) {
		assert.Equal(t, 50.0, m1.Subtract(m2).Float64())
	})

	t.Run("multiply by rat", func(t *testing.T) {
		result := m1.MultiplyByRat(big.NewRat(3, 2))
		assert.Equal(t, 150.0, result.Float64())
	})

	t.Run("subtraction below zero is representable", func(t *testing.T) {
		result := m2.Subtract(m1)
		assert.True(t, result.IsNegative())
	})
}

func TestMoney_Copy(t *testing.T) {
	m1, _ := NewMoney(100, 1)
	m2 := m1.Copy()

	assert.True(t, m1.Equals(m2))

	// Mutating the copy's value must not touch the original.
	m3 := m2.Add(m2)
	assert.Equal(t, 100.0, m1.Float64())
	assert.Equal(t, 200.0, m3.Float64())
}

func TestMoney_String(t *testing.T) {
	m, _ := NewMoney(249900, 100)
	assert.Equal(t, "2499.00", m.String())
}
