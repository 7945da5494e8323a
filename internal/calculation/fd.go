package calculation

import (
	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

// fdTenureLimit returns the bound for the FD tenure in its active unit.
func fdTenureLimit(unit domain.TenureUnit) domain.FieldLimit {
	switch unit {
	case domain.UnitMonths:
		return domain.FDTenureMonths
	case domain.UnitDays:
		return domain.FDTenureDays
	default:
		return domain.FDTenureYears
	}
}

// fdPeriodRate picks the rate per compounding period for the active unit:
// the annual rate for Years, rate/12 for Months, rate/365 for Days.
func fdPeriodRate(annualPct float64, unit domain.TenureUnit) float64 {
	switch unit {
	case domain.UnitMonths:
		return annualPct / 100 / 12
	case domain.UnitDays:
		return annualPct / 100 / 365
	default:
		return annualPct / 100
	}
}

// fdYears converts a tenure in the active unit to years for simple interest.
func fdYears(tenure float64, unit domain.TenureUnit) float64 {
	switch unit {
	case domain.UnitMonths:
		return tenure / 12
	case domain.UnitDays:
		return tenure / 365
	default:
		return tenure
	}
}

// CalculateFD computes fixed deposit maturity. Compound mode compounds once
// per tenure unit at the per-unit rate; simple mode accrues flat interest on
// the tenure converted to years.
func CalculateFD(in domain.FDInput) domain.Result {
	principal := Safe(in.Principal, domain.FDPrincipal)
	rate := Safe(in.AnnualRatePct, domain.FDRatePct)
	tenure := Safe(in.Tenure, fdTenureLimit(in.Unit))

	invested := roundRupee(decimal.NewFromFloat(principal))

	if in.SimpleMode {
		interest := roundRupee(decimal.NewFromFloat(principal * (rate / 100) * fdYears(tenure, in.Unit)))
		return domain.Result{
			InvestedAmount:   invested,
			EstimatedReturns: interest,
			TotalValue:       invested.Add(interest),
		}
	}

	maturity := roundRupee(compoundFloat(principal, fdPeriodRate(rate, in.Unit), tenure))
	return domain.NewResult(invested, maturity)
}
