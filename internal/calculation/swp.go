package calculation

import (
	"math"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateSWP simulates a systematic withdrawal plan month by month.
// Interest is applied first at the compounding-derived monthly rate (the SIP
// convention), the balance is rounded to paise, and then the fixed
// withdrawal, rounded to the rupee and capped at what remains, is taken out.
// The simulation stops early once the balance reaches zero.
func CalculateSWP(in domain.SWPInput) domain.SWPResult {
	principal := roundRupee(decimal.NewFromFloat(Safe(in.Principal, domain.SWPPrincipal)))
	withdrawal := roundRupee(decimal.NewFromFloat(Safe(in.MonthlyWithdrawal, domain.SWPWithdrawal)))
	rate := Safe(in.AnnualRatePct, domain.AnnualRatePct)
	years := Safe(in.Years, domain.SWPYears)

	months := int(math.Round(years * 12))
	i := MonthlyRate(rate)
	factor := one.Add(i)

	balance := principal
	totalWithdrawal := decimal.Zero
	schedule := make([]domain.SWPMonth, 0, months)
	sustained := 0
	for m := 1; m <= months; m++ {
		grown := roundPaise(balance.Mul(factor))
		interest := grown.Sub(balance)
		balance = grown

		out := withdrawal
		if out.GreaterThan(balance) {
			out = balance
		}
		balance = balance.Sub(out)
		totalWithdrawal = totalWithdrawal.Add(out)
		sustained = m

		schedule = append(schedule, domain.SWPMonth{
			Month:          m,
			InterestEarned: interest,
			Withdrawal:     out,
			Balance:        balance,
		})

		if balance.LessThanOrEqual(decimal.Zero) {
			balance = decimal.Zero
			break
		}
	}

	return domain.SWPResult{
		InvestedAmount:  principal,
		TotalWithdrawal: roundRupee(totalWithdrawal),
		FinalValue:      roundRupee(balance),
		MonthsSustained: sustained,
		Schedule:        schedule,
	}
}
