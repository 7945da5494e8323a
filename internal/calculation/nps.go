package calculation

import (
	"math"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

var npsAnnuityShare = decimal.NewFromFloat(0.40)

// CalculateNPS compounds monthly National Pension System contributions from
// the current age to retirement at 60, deposits at the start of each month.
// The result reports the policy-mandated minimum annuity purchase (40% of
// maturity) and the remaining lump-sum-eligible share.
func CalculateNPS(in domain.NPSInput) domain.NPSResult {
	monthly := roundRupee(decimal.NewFromFloat(Safe(in.MonthlyInvestment, domain.NPSMonthly)))
	rate := Safe(in.AnnualRatePct, domain.AnnualRatePct)
	age := int(math.Round(Safe(in.Age, domain.NPSAge)))

	tenureYears := domain.NPSRetirementAge - age
	months := tenureYears * 12
	if months <= 0 {
		return domain.NPSResult{Result: domain.NewResult(decimal.Zero, decimal.Zero)}
	}

	invested := monthly.Mul(decimal.NewFromInt(int64(months)))

	i := NominalMonthlyRate(rate)
	factor := one.Add(i)
	balance := decimal.Zero
	for m := 0; m < months; m++ {
		balance = roundPaise(balance.Add(monthly).Mul(factor))
	}

	total := roundRupee(balance)
	if i.IsZero() {
		total = invested
	}
	minAnnuity := roundRupee(total.Mul(npsAnnuityShare))

	return domain.NPSResult{
		Result:               domain.NewResult(invested, total),
		MinAnnuityInvestment: minAnnuity,
		LumpsumValue:         total.Sub(minAnnuity),
		TenureYears:          tenureYears,
	}
}
