// Package numeric provides safe coercion of untrusted input to finite
// numbers with fallback defaults. All monetary and weight arithmetic in the
// services goes through decimal; these helpers guard the float/string edges.
package numeric

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FiniteOr returns v if it is a finite number, otherwise def.
func FiniteOr(v float64, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DecimalOr dereferences an optional decimal, falling back to def when nil.
func DecimalOr(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}

// DecimalOrZero dereferences an optional decimal, falling back to zero.
func DecimalOrZero(v *decimal.Decimal) decimal.Decimal {
	return DecimalOr(v, decimal.Zero)
}

// ParseDecimalOr parses s as a decimal, returning def for empty or
// malformed input.
func ParseDecimalOr(s string, def decimal.Decimal) decimal.Decimal {
	if s == "" {
		return def
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return def
	}
	return d
}

// ParseFloatOr parses s as a float, returning def for empty, malformed or
// non-finite input.
func ParseFloatOr(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return FiniteOr(v, def)
}

// FromFloatOr converts a float to decimal, returning def when the float is
// not finite.
func FromFloatOr(v float64, def decimal.Decimal) decimal.Decimal {
	if !IsFinite(v) {
		return def
	}
	return decimal.NewFromFloat(v)
}
