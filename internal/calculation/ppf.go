package calculation

import (
	"math"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculatePPF accumulates yearly contributions with interest credited
// annually at the published rate. The deposit lands at the start of the year
// and the credited balance is rounded to paise each year.
func CalculatePPF(in domain.PPFInput) domain.Result {
	yearly := roundRupee(decimal.NewFromFloat(Safe(in.YearlyInvestment, domain.PPFYearly)))
	rate := in.AnnualRatePct
	if rate == 0 {
		rate = domain.PPFDefaultRatePct
	}
	rate = Safe(rate, domain.AnnualRatePct)
	years := int(math.Round(Safe(in.Years, domain.PPFYears)))

	invested := yearly.Mul(decimal.NewFromInt(int64(years)))

	factor := one.Add(decimal.NewFromFloat(rate / 100))
	balance := decimal.Zero
	for y := 0; y < years; y++ {
		balance = roundPaise(balance.Add(yearly).Mul(factor))
	}

	return domain.NewResult(invested, roundRupee(balance))
}
