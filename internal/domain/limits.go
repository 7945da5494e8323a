package domain

// FieldLimit bounds a single calculator input field. Min is only enforced as
// the calculation-time fallback; Max is truncated at entry time. Default
// seeds sliders and unit switches.
type FieldLimit struct {
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	Default float64 `yaml:"default" json:"default"`
}

// Shared rate and tenure bounds. The rate minimum is zero on purpose: the
// no-growth boundary is a legal input and every calculator carries a clean
// zero-rate branch instead of dividing by zero.
var (
	AnnualRatePct = FieldLimit{Min: 0, Max: 30, Default: 12}
	TenureYears   = FieldLimit{Min: 1, Max: 40, Default: 10}
)

// Per-product amount and field bounds.
var (
	SIPMonthly       = FieldLimit{Min: 100, Max: 1_000_000, Default: 25_000}
	LumpsumPrincipal = FieldLimit{Min: 500, Max: 10_000_000, Default: 25_000}
	StepUpPct        = FieldLimit{Min: 1, Max: 50, Default: 10}

	FDPrincipal    = FieldLimit{Min: 5_000, Max: 10_000_000, Default: 100_000}
	FDTenureYears  = FieldLimit{Min: 1, Max: 25, Default: 5}
	FDTenureMonths = FieldLimit{Min: 1, Max: 300, Default: 12}
	FDTenureDays   = FieldLimit{Min: 7, Max: 9_125, Default: 90}
	FDRatePct      = FieldLimit{Min: 0, Max: 15, Default: 6.5}

	RDMonthly      = FieldLimit{Min: 500, Max: 1_000_000, Default: 5_000}
	RDTenureYears  = FieldLimit{Min: 1, Max: 10, Default: 3}
	RDTenureMonths = FieldLimit{Min: 3, Max: 120, Default: 36}
	RDRatePct      = FieldLimit{Min: 0, Max: 15, Default: 6.5}

	PPFYearly = FieldLimit{Min: 500, Max: 150_000, Default: 10_000}
	PPFYears  = FieldLimit{Min: 15, Max: 50, Default: 15}

	NSCPrincipal = FieldLimit{Min: 1_000, Max: 10_000_000, Default: 100_000}

	SSYYearly    = FieldLimit{Min: 250, Max: 150_000, Default: 10_000}
	SSYStartYear = FieldLimit{Min: 2018, Max: 2099, Default: 2024}

	EPFMonthlySalary  = FieldLimit{Min: 1_000, Max: 1_000_000, Default: 50_000}
	EPFContributionPct = FieldLimit{Min: 12, Max: 20, Default: 12}
	EPFAnnualIncrease = FieldLimit{Min: 0, Max: 15, Default: 5}
	EPFAge            = FieldLimit{Min: 15, Max: 57, Default: 30}

	NPSMonthly = FieldLimit{Min: 500, Max: 150_000, Default: 10_000}
	NPSAge     = FieldLimit{Min: 18, Max: 59, Default: 30}

	GratuitySalary = FieldLimit{Min: 1_000, Max: 1_000_000, Default: 60_000}
	GratuityYears  = FieldLimit{Min: 5, Max: 50, Default: 10}

	SWPPrincipal  = FieldLimit{Min: 10_000, Max: 100_000_000, Default: 500_000}
	SWPWithdrawal = FieldLimit{Min: 500, Max: 1_000_000, Default: 10_000}
	SWPYears      = FieldLimit{Min: 1, Max: 30, Default: 5}
)

// Fixed-scheme constants. Rates track the published government rates and can
// be overridden per calculation; the caps and tenures are statutory.
const (
	EPFRetirementAge = 58
	NPSRetirementAge = 60

	NSCTenureYears = 5

	SSYContributionYears = 15
	SSYMaturityYears     = 21

	// Empirical correction applied on top of the published SSY rate to match
	// a widely-quoted third-party calculator. Opt-in, never folded into the
	// base rate (its provenance is reverse engineering, not a rule).
	SSYCalibrationOffsetPct = 0.004452109210123

	GratuityCeiling = 1_000_000
)

// Published scheme rates used as defaults when no override is supplied.
const (
	PPFDefaultRatePct = 7.1
	NSCDefaultRatePct = 7.7
	SSYDefaultRatePct = 8.2
	EPFDefaultRatePct = 8.25
)
