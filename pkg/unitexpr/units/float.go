package units

import (
	"math"

	"github.com/shopspring/decimal"
)

// FromFloat rounds a float64 back into the decimal domain. Results that left
// the numeric domain (NaN, ±Inf) are rejected with ErrMathDomain so callers
// never observe non-finite amounts.
func FromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, ErrMathDomain
	}
	return decimal.NewFromFloat(f), nil
}

func fromFloat(f float64) (Quantity, error) {
	d, err := FromFloat(f)
	if err != nil {
		return Quantity{}, err
	}
	return New(d), nil
}

func pow(base, exp float64) float64 {
	return math.Pow(base, exp)
}
