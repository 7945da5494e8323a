package calculation

import (
	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateSimpleInterest computes SI = P*R*T/100 and A = P+SI. Degenerate
// input falls back to the field minimums, so the result is always well
// formed.
func CalculateSimpleInterest(in domain.SimpleInterestInput) domain.Result {
	principal := Safe(in.Principal, domain.LumpsumPrincipal)
	rate := Safe(in.AnnualRatePct, domain.AnnualRatePct)
	years := Safe(in.Years, domain.TenureYears)

	invested := roundRupee(decimal.NewFromFloat(principal))
	interest := roundRupee(decimal.NewFromFloat(principal * rate * years / 100))
	return domain.Result{
		InvestedAmount:   invested,
		EstimatedReturns: interest,
		TotalValue:       invested.Add(interest),
	}
}

// CalculateCompoundInterest compounds at the frequency selected by the
// Yearly/Half-Yearly/Quarterly pill.
func CalculateCompoundInterest(in domain.CompoundInterestInput) domain.Result {
	principal := Safe(in.Principal, domain.LumpsumPrincipal)
	rate := Safe(in.AnnualRatePct, domain.AnnualRatePct)
	years := Safe(in.Years, domain.TenureYears)

	n := float64(in.Frequency.PeriodsPerYear())
	invested := roundRupee(decimal.NewFromFloat(principal))
	maturity := roundRupee(compoundFloat(principal, rate/100/n, n*years))
	return domain.NewResult(invested, maturity)
}
