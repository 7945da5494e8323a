package calculation

import (
	"math"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateGratuity applies the statutory formula G = n * b * 15/26 with the
// service years rounded to the nearest whole year and the payout capped at
// the ceiling (₹10,00,000 unless overridden). Both the raw and capped values
// are retained so the display can show what the cap removed.
func CalculateGratuity(in domain.GratuityInput) domain.GratuityResult {
	salary := decimal.NewFromFloat(Safe(in.MonthlySalary, domain.GratuitySalary))
	years := int(math.Round(Safe(in.YearsOfService, domain.GratuityYears)))

	cap := decimal.NewFromInt(domain.GratuityCeiling)
	if in.Cap > 0 {
		cap = decimal.NewFromFloat(in.Cap)
	}

	raw := roundRupee(salary.Mul(decimal.NewFromInt(int64(years * 15))).Div(decimal.NewFromInt(26)))

	result := domain.GratuityResult{
		RoundedYears: years,
		RawGratuity:  raw,
		Gratuity:     raw,
	}
	if raw.GreaterThan(cap) {
		result.Gratuity = cap
		result.Capped = true
	}
	return result
}
