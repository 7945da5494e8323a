package calculation

import (
	"math"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateEPF simulates Employees' Provident Fund accumulation month by
// month from the current age to the statutory retirement age of 58. The
// salary escalates by the annual-increase percentage at the start of every
// twelfth month (months 13, 25, ...). The employee contribution and an equal
// employer contribution are both credited to the same balance at the start
// of the month, then the balance grows at the nominal monthly rate.
func CalculateEPF(in domain.EPFInput) domain.EPFResult {
	salary := roundPaise(decimal.NewFromFloat(Safe(in.MonthlySalary, domain.EPFMonthlySalary)))
	pct := Safe(in.ContributionPct, domain.EPFContributionPct)
	increase := Safe(in.AnnualIncrease, domain.EPFAnnualIncrease)
	rate := in.AnnualRatePct
	if rate == 0 {
		rate = domain.EPFDefaultRatePct
	}
	rate = Safe(rate, domain.AnnualRatePct)
	age := int(math.Round(Safe(in.Age, domain.EPFAge)))

	months := (domain.EPFRetirementAge - age) * 12
	if months <= 0 {
		return domain.EPFResult{Result: domain.NewResult(decimal.Zero, decimal.Zero)}
	}

	pctFactor := decimal.NewFromFloat(pct / 100)
	escalation := one.Add(decimal.NewFromFloat(increase / 100))
	i := NominalMonthlyRate(rate)
	factor := one.Add(i)

	invested := decimal.Zero
	balance := decimal.Zero
	schedule := make([]domain.ScheduleRow, 0, months/12+1)
	yearCredit := decimal.Zero
	for m := 1; m <= months; m++ {
		if m > 1 && (m-1)%12 == 0 {
			salary = roundPaise(salary.Mul(escalation))
		}
		contribution := roundRupee(salary.Mul(pctFactor))
		credit := contribution.Mul(decimal.NewFromInt(2))
		invested = invested.Add(credit)
		yearCredit = yearCredit.Add(credit)
		balance = roundPaise(balance.Add(credit).Mul(factor))
		if m%12 == 0 || m == months {
			schedule = append(schedule, domain.ScheduleRow{
				Period:  (m + 11) / 12,
				Credit:  yearCredit,
				Balance: roundRupee(balance),
			})
			yearCredit = decimal.Zero
		}
	}

	return domain.EPFResult{
		Result:   domain.NewResult(invested, roundRupee(balance)),
		Schedule: schedule,
	}
}
