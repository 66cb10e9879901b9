package analytics

import "github.com/shopspring/decimal"

const (
	moneyPlaces   = 2
	percentPlaces = 2
	// MaxDisplayPercentage caps the per-budget percentage used for progress bars.
	MaxDisplayPercentage = 100.0
)

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds an amount to cents.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// Percent returns part as a percentage of whole, rounded to two places.
// A whole that is zero or negative yields 0 rather than an infinite value.
func Percent(part, whole decimal.Decimal) float64 {
	if whole.Sign() <= 0 {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(percentPlaces).InexactFloat64()
}

// ClampPercent bounds p to [0, MaxDisplayPercentage].
func ClampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > MaxDisplayPercentage:
		return MaxDisplayPercentage
	default:
		return p
	}
}
