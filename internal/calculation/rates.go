package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// MonthlyRate derives the effective monthly rate from a nominal annual
// percentage by compounding conversion: (1+r/100)^(1/12) - 1. This is the
// convention used by the SIP family and SWP. It is not r/1200.
func MonthlyRate(annualPct float64) decimal.Decimal {
	if annualPct == 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(math.Pow(1+annualPct/100, 1.0/12) - 1)
}

// NominalMonthlyRate is the simple division r/1200 used by RD, EPF and NPS.
// The split between this and MonthlyRate is a load-bearing product
// convention, not an oversight; see the regression tests.
func NominalMonthlyRate(annualPct float64) decimal.Decimal {
	return decimal.NewFromFloat(annualPct / 1200)
}

// compoundFloat computes principal*(1+rate)^periods in float64. Used where
// the exponent may be fractional (annual compounding over fractional years,
// per-unit deposit rates).
func compoundFloat(principal, periodRate, periods float64) decimal.Decimal {
	return decimal.NewFromFloat(principal * math.Pow(1+periodRate, periods))
}

// roundPaise rounds a running balance to two decimal places.
func roundPaise(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// roundRupee rounds a displayed amount or an applied contribution to the
// nearest whole currency unit.
func roundRupee(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
