package calculation

import (
	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateNSC computes National Savings Certificate maturity over the
// statutory five-year tenure. The compounding frequency pill selects yearly
// or half-yearly crediting; the periodic rate is the annual rate divided by
// the number of periods per year.
func CalculateNSC(in domain.NSCInput) domain.Result {
	principal := Safe(in.Principal, domain.NSCPrincipal)
	rate := in.AnnualRatePct
	if rate == 0 {
		rate = domain.NSCDefaultRatePct
	}
	rate = Safe(rate, domain.AnnualRatePct)

	n := in.Frequency.PeriodsPerYear()
	if n > 2 {
		// NSC only offers yearly and half-yearly crediting.
		n = 2
	}

	invested := roundRupee(decimal.NewFromFloat(principal))
	periodRate := decimal.NewFromFloat(rate / 100 / float64(n))
	periods := decimal.NewFromInt(int64(domain.NSCTenureYears * n))
	maturity := roundRupee(invested.Mul(one.Add(periodRate).Pow(periods)))

	return domain.NewResult(invested, maturity)
}
