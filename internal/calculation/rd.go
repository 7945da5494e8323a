package calculation

import (
	"math"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateRD computes recurring deposit maturity. Deposits are always
// monthly; the monthly rate is the nominal r/1200 (unlike the SIP family's
// compounding-derived rate) and the future value uses the closed annuity-due
// form FV = P * ((1+i)^n - 1)/i * (1+i).
func CalculateRD(in domain.RDInput) domain.RDResult {
	deposit := roundRupee(decimal.NewFromFloat(Safe(in.MonthlyDeposit, domain.RDMonthly)))
	rate := Safe(in.AnnualRatePct, domain.RDRatePct)

	var months int
	if in.Unit == domain.UnitMonths {
		months = int(math.Round(Safe(in.Tenure, domain.RDTenureMonths)))
	} else {
		months = int(math.Round(Safe(in.Tenure, domain.RDTenureYears) * 12))
	}

	n := decimal.NewFromInt(int64(months))
	invested := deposit.Mul(n)

	i := NominalMonthlyRate(rate)
	if i.IsZero() || months == 0 {
		return domain.RDResult{Result: domain.NewResult(invested, invested), TotalMonths: months}
	}

	factor := one.Add(i)
	annuity := factor.Pow(n).Sub(one).Div(i).Mul(factor)
	maturity := roundRupee(deposit.Mul(annuity))

	return domain.RDResult{Result: domain.NewResult(invested, maturity), TotalMonths: months}
}
