package calculation

import (
	"math"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateSIP computes the maturity of a fixed monthly investment. The
// contribution lands at the start of each month (annuity-due) and the
// balance then grows by the compounding-derived monthly rate, rounded to
// paise after every month.
func CalculateSIP(in domain.SIPInput) domain.Result {
	monthly := roundRupee(decimal.NewFromFloat(Safe(in.MonthlyInvestment, domain.SIPMonthly)))
	rate := Safe(in.AnnualRatePct, domain.AnnualRatePct)
	years := Safe(in.Years, domain.TenureYears)

	months := int(math.Round(years * 12))
	invested := monthly.Mul(decimal.NewFromInt(int64(months)))

	i := MonthlyRate(rate)
	if i.IsZero() || months == 0 {
		return domain.NewResult(invested, invested)
	}

	factor := one.Add(i)
	balance := decimal.Zero
	for m := 0; m < months; m++ {
		balance = roundPaise(balance.Add(monthly).Mul(factor))
	}

	return domain.NewResult(invested, roundRupee(balance))
}
