// Package money centralizes the 2-decimal rounding used by the pricing
// engine. Every intermediate amount (line total, subtotal, each discount,
// final total) is rounded independently; changing that order changes
// results at the cent level, so all arithmetic goes through here.
package money

import "github.com/shopspring/decimal"

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Mul returns round2(a * b).
func Mul(a, b float64) float64 {
	return decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}

// MulQty returns round2(price * qty).
func MulQty(price float64, qty int) float64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty))).Round(2).InexactFloat64()
}

// Sub returns round2(a - b).
func Sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}

// Add returns round2(a + b).
func Add(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}

// Sum rounds each value to 2 decimals, adds them, and rounds the sum.
func Sum(vals ...float64) float64 {
	total := decimal.Zero
	for _, v := range vals {
		total = total.Add(decimal.NewFromFloat(v).Round(2))
	}
	return total.Round(2).InexactFloat64()
}
