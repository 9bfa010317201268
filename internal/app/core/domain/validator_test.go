package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		want       bool
	}{
		{"six digits", "123456", true},
		{"nine digits", "123456789", true},
		{"twelve digits", "123456789012", true},
		{"surrounding whitespace is trimmed", "  123456789  ", true},
		{"five digits", "12345", false},
		{"thirteen digits", "1234567890123", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"letters", "12345a789", false},
		{"inner whitespace", "123 456789", false},
		{"negative sign", "-12345678", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidIdentifier(tt.identifier))
		})
	}
}

func TestIsValidBalance(t *testing.T) {
	assert.True(t, IsValidBalance(0))
	assert.True(t, IsValidBalance(1000.55))
	assert.False(t, IsValidBalance(-0.01))
	assert.False(t, IsValidBalance(math.NaN()))
	assert.False(t, IsValidBalance(math.Inf(1)))
	assert.False(t, IsValidBalance(math.Inf(-1)))
}

func TestIsValidAmount(t *testing.T) {
	assert.True(t, IsValidAmount(0.01))
	assert.True(t, IsValidAmount(100))
	assert.False(t, IsValidAmount(0))
	assert.False(t, IsValidAmount(-5))
	assert.False(t, IsValidAmount(math.NaN()))
	assert.False(t, IsValidAmount(math.Inf(1)))
}

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"half rounds away from zero", 0.005, 0.01},
		{"negative half rounds away from zero", -0.005, -0.01},
		{"rounds down", 100.123, 100.12},
		{"rounds up", 100.126, 100.13},
		{"already two decimals", 749.88, 749.88},
		{"integer", 1000, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundCurrency(tt.in), 1e-9)
		})
	}
}

func TestRoundCurrencyIdempotent(t *testing.T) {
	for _, v := range []float64{0.005, 100.123, 100.126, 749.877, -3.14159, 0} {
		once := RoundCurrency(v)
		assert.Equal(t, once, RoundCurrency(once))
	}
}

func TestRoundCurrencyNonFinitePassthrough(t *testing.T) {
	assert.True(t, math.IsNaN(RoundCurrency(math.NaN())))
	assert.True(t, math.IsInf(RoundCurrency(math.Inf(1)), 1))
}

func TestValidateAccountCollectsAllErrors(t *testing.T) {
	result := ValidateAccount(Account{ID: "12345", Balance: -1})
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 2)

	result = ValidateAccount(Account{ID: "123456789", Balance: -1})
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 1)

	result = ValidateAccount(Account{ID: "123456789", Balance: 1000})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}
