package domain

// Calculator inputs are plain numeric records. Raw values may sit outside
// their field bounds while the user is still typing; each calculator
// substitutes the bound minimum at calculation time and the presentation
// layer flags the raw value separately.

// SIPInput describes a fixed monthly investment.
type SIPInput struct {
	MonthlyInvestment float64 `yaml:"monthly_investment" json:"monthlyInvestment"`
	AnnualRatePct     float64 `yaml:"annual_rate_pct" json:"annualRatePct"`
	Years             float64 `yaml:"years" json:"years"`
}

// LumpsumInput describes a one-time investment compounded annually.
type LumpsumInput struct {
	Principal     float64 `yaml:"principal" json:"principal"`
	AnnualRatePct float64 `yaml:"annual_rate_pct" json:"annualRatePct"`
	Years         float64 `yaml:"years" json:"years"`
}

// StepUpSIPInput is a SIP whose contribution grows by a fixed percentage
// every twelve months.
type StepUpSIPInput struct {
	MonthlyInvestment float64 `yaml:"monthly_investment" json:"monthlyInvestment"`
	AnnualRatePct     float64 `yaml:"annual_rate_pct" json:"annualRatePct"`
	Years             float64 `yaml:"years" json:"years"`
	StepUpPct         float64 `yaml:"step_up_pct" json:"stepUpPct"`
}

// FDInput describes a fixed deposit. Tenure is interpreted in Unit.
type FDInput struct {
	Principal     float64    `yaml:"principal" json:"principal"`
	AnnualRatePct float64    `yaml:"annual_rate_pct" json:"annualRatePct"`
	Tenure        float64    `yaml:"tenure" json:"tenure"`
	Unit          TenureUnit `yaml:"unit" json:"unit"`
	SimpleMode    bool       `yaml:"simple_mode" json:"simpleMode"`
}

// RDInput describes a recurring deposit. Tenure is Years or Months.
type RDInput struct {
	MonthlyDeposit float64    `yaml:"monthly_deposit" json:"monthlyDeposit"`
	AnnualRatePct  float64    `yaml:"annual_rate_pct" json:"annualRatePct"`
	Tenure         float64    `yaml:"tenure" json:"tenure"`
	Unit           TenureUnit `yaml:"unit" json:"unit"`
}

// PPFInput describes yearly Public Provident Fund contributions.
type PPFInput struct {
	YearlyInvestment float64 `yaml:"yearly_investment" json:"yearlyInvestment"`
	AnnualRatePct    float64 `yaml:"annual_rate_pct" json:"annualRatePct"`
	Years            float64 `yaml:"years" json:"years"`
}

// NSCInput describes a National Savings Certificate purchase. Tenure is the
// statutory five years and is not user editable.
type NSCInput struct {
	Principal     float64              `yaml:"principal" json:"principal"`
	AnnualRatePct float64              `yaml:"annual_rate_pct" json:"annualRatePct"`
	Frequency     CompoundingFrequency `yaml:"frequency" json:"frequency"`
}

// SSYInput describes a Sukanya Samriddhi Yojana account opened in StartYear.
// Calibrate opts into the empirical rate offset.
type SSYInput struct {
	YearlyInvestment float64 `yaml:"yearly_investment" json:"yearlyInvestment"`
	AnnualRatePct    float64 `yaml:"annual_rate_pct" json:"annualRatePct"`
	StartYear        int     `yaml:"start_year" json:"startYear"`
	Calibrate        bool    `yaml:"calibrate" json:"calibrate"`
}

// EPFInput describes Employees' Provident Fund accumulation until the
// statutory retirement age.
type EPFInput struct {
	MonthlySalary   float64 `yaml:"monthly_salary" json:"monthlySalary"`
	ContributionPct float64 `yaml:"contribution_pct" json:"contributionPct"`
	AnnualIncrease  float64 `yaml:"annual_increase_pct" json:"annualIncreasePct"`
	AnnualRatePct   float64 `yaml:"annual_rate_pct" json:"annualRatePct"`
	Age             float64 `yaml:"age" json:"age"`
}

// NPSInput describes National Pension System contributions until age 60.
type NPSInput struct {
	MonthlyInvestment float64 `yaml:"monthly_investment" json:"monthlyInvestment"`
	AnnualRatePct     float64 `yaml:"annual_rate_pct" json:"annualRatePct"`
	Age               float64 `yaml:"age" json:"age"`
}

// GratuityInput describes a statutory gratuity computation. Cap of zero
// means the default statutory ceiling.
type GratuityInput struct {
	MonthlySalary  float64 `yaml:"monthly_salary" json:"monthlySalary"`
	YearsOfService float64 `yaml:"years_of_service" json:"yearsOfService"`
	Cap            float64 `yaml:"cap,omitempty" json:"cap,omitempty"`
}

// SWPInput describes a systematic withdrawal plan drawn from a lumpsum.
type SWPInput struct {
	Principal         float64 `yaml:"principal" json:"principal"`
	MonthlyWithdrawal float64 `yaml:"monthly_withdrawal" json:"monthlyWithdrawal"`
	AnnualRatePct     float64 `yaml:"annual_rate_pct" json:"annualRatePct"`
	Years             float64 `yaml:"years" json:"years"`
}

// SimpleInterestInput describes plain P*R*T/100 interest.
type SimpleInterestInput struct {
	Principal     float64 `yaml:"principal" json:"principal"`
	AnnualRatePct float64 `yaml:"annual_rate_pct" json:"annualRatePct"`
	Years         float64 `yaml:"years" json:"years"`
}

// CompoundInterestInput describes compound interest with a selectable
// crediting frequency.
type CompoundInterestInput struct {
	Principal     float64              `yaml:"principal" json:"principal"`
	AnnualRatePct float64              `yaml:"annual_rate_pct" json:"annualRatePct"`
	Years         float64              `yaml:"years" json:"years"`
	Frequency     CompoundingFrequency `yaml:"frequency" json:"frequency"`
}

// MFReturnInput describes a mutual fund lumpsum return estimate.
type MFReturnInput struct {
	Principal     float64 `yaml:"principal" json:"principal"`
	AnnualRatePct float64 `yaml:"annual_rate_pct" json:"annualRatePct"`
	Years         float64 `yaml:"years" json:"years"`
}
