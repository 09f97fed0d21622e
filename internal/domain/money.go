package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds a currency value to two decimal places, half away from zero.
func Round2(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// LineAmount computes quantity × rate at currency precision.
// Negative or non-finite inputs are clamped to zero so recomputing a
// displayed amount can never go negative; Validate rejects them before save.
func LineAmount(quantity, rate float64) float64 {
	if !isFinite(quantity) || quantity < 0 {
		quantity = 0
	}
	if !isFinite(rate) || rate < 0 {
		rate = 0
	}
	q := decimal.NewFromFloat(quantity)
	r := decimal.NewFromFloat(rate)
	f, _ := q.Mul(r).Round(2).Float64()
	return f
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
