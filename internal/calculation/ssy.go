package calculation

import (
	"math"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateSSY simulates a Sukanya Samriddhi Yojana account month by month:
// exactly fifteen yearly contributions, twenty-one years to maturity. Each
// month the balance grows by the nominal monthly rate (rate/1200, rounded to
// paise) and at the end of each of the first fifteen years the yearly
// deposit is credited. The stepped simulation is deliberate; a closed-form
// annuity cannot interleave monthly compounding with year-boundary deposits.
func CalculateSSY(in domain.SSYInput) domain.SSYResult {
	yearly := roundRupee(decimal.NewFromFloat(Safe(in.YearlyInvestment, domain.SSYYearly)))
	rate := in.AnnualRatePct
	if rate == 0 {
		rate = domain.SSYDefaultRatePct
	}
	rate = Safe(rate, domain.AnnualRatePct)
	if in.Calibrate {
		rate += domain.SSYCalibrationOffsetPct
	}
	startYear := int(math.Round(Safe(float64(in.StartYear), domain.SSYStartYear)))

	invested := yearly.Mul(decimal.NewFromInt(domain.SSYContributionYears))

	i := NominalMonthlyRate(rate)
	factor := one.Add(i)
	totalMonths := domain.SSYMaturityYears * 12
	depositCutoff := domain.SSYContributionYears * 12

	balance := decimal.Zero
	schedule := make([]domain.ScheduleRow, 0, domain.SSYMaturityYears)
	for m := 1; m <= totalMonths; m++ {
		balance = roundPaise(balance.Mul(factor))
		credit := decimal.Zero
		if m%12 == 0 && m <= depositCutoff {
			balance = balance.Add(yearly)
			credit = yearly
		}
		if m%12 == 0 {
			schedule = append(schedule, domain.ScheduleRow{
				Period:  startYear + m/12,
				Credit:  credit,
				Balance: roundRupee(balance),
			})
		}
	}

	return domain.SSYResult{
		Result:       domain.NewResult(invested, roundRupee(balance)),
		MaturityYear: startYear + domain.SSYMaturityYears,
		Schedule:     schedule,
	}
}
