package calculation

import (
	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateLumpsum computes one-time investment growth with annual
// compounding applied directly to the nominal annual rate. No monthly
// conversion happens here; that convention belongs to the SIP family.
func CalculateLumpsum(in domain.LumpsumInput) domain.Result {
	principal := Safe(in.Principal, domain.LumpsumPrincipal)
	rate := Safe(in.AnnualRatePct, domain.AnnualRatePct)
	years := Safe(in.Years, domain.TenureYears)

	invested := roundRupee(decimal.NewFromFloat(principal))
	maturity := roundRupee(compoundFloat(principal, rate/100, years))
	return domain.NewResult(invested, maturity)
}

// CalculateMFReturn estimates a mutual fund lumpsum return. Same compound
// growth as CalculateLumpsum, reported as invested/gain/maturity.
func CalculateMFReturn(in domain.MFReturnInput) domain.Result {
	return CalculateLumpsum(domain.LumpsumInput{
		Principal:     in.Principal,
		AnnualRatePct: in.AnnualRatePct,
		Years:         in.Years,
	})
}
