package calculation

import (
	"math"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateStepUpSIP computes a SIP whose contribution escalates by a fixed
// percentage every twelve months. The month-m contribution (0-indexed) is
// base*(1+step/100)^floor(m/12), rounded to the rupee before it is applied.
func CalculateStepUpSIP(in domain.StepUpSIPInput) domain.Result {
	base := roundRupee(decimal.NewFromFloat(Safe(in.MonthlyInvestment, domain.SIPMonthly)))
	rate := Safe(in.AnnualRatePct, domain.AnnualRatePct)
	years := Safe(in.Years, domain.TenureYears)
	step := Safe(in.StepUpPct, domain.StepUpPct)

	months := int(math.Round(years * 12))
	stepFactor := one.Add(decimal.NewFromFloat(step / 100))

	i := MonthlyRate(rate)
	factor := one.Add(i)

	invested := decimal.Zero
	balance := decimal.Zero
	contribution := base
	for m := 0; m < months; m++ {
		if m > 0 && m%12 == 0 {
			// Recompute from the base each year so rupee rounding of one
			// year's contribution never compounds into the next.
			contribution = roundRupee(base.Mul(stepFactor.Pow(decimal.NewFromInt(int64(m / 12)))))
		}
		invested = invested.Add(contribution)
		balance = roundPaise(balance.Add(contribution).Mul(factor))
	}

	if i.IsZero() {
		return domain.NewResult(invested, invested)
	}
	return domain.NewResult(invested, roundRupee(balance))
}
