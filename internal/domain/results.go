package domain

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Result is the common shape every calculator produces: whole-rupee invested
// amount, derived gain, and their sum. Results are transient values owned by
// the caller; nothing here is persisted.
type Result struct {
	InvestedAmount   decimal.Decimal `json:"investedAmount"`
	EstimatedReturns decimal.Decimal `json:"estimatedReturns"`
	TotalValue       decimal.Decimal `json:"totalValue"`
}

// NewResult derives the gain from invested and maturity figures.
func NewResult(invested, total decimal.Decimal) Result {
	return Result{
		InvestedAmount:   invested,
		EstimatedReturns: total.Sub(invested),
		TotalValue:       total,
	}
}

// ScheduleRow is one period of an accumulation schedule (SSY and EPF report
// year rows; the period is a 1-based year index unless noted).
type ScheduleRow struct {
	Period  int             `json:"period"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

// RDResult adds the resolved month count to the common shape.
type RDResult struct {
	Result
	TotalMonths int `json:"totalMonths"`
}

// SSYResult adds the maturity year and the year-end balance schedule.
type SSYResult struct {
	Result
	MaturityYear int           `json:"maturityYear"`
	Schedule     []ScheduleRow `json:"schedule,omitempty"`
}

// EPFResult adds the year-end balance schedule.
type EPFResult struct {
	Result
	Schedule []ScheduleRow `json:"schedule,omitempty"`
}

// NPSResult adds the statutory 40% minimum annuity split and the horizon.
type NPSResult struct {
	Result
	MinAnnuityInvestment decimal.Decimal `json:"minAnnuityInvestment"`
	LumpsumValue         decimal.Decimal `json:"lumpsumValue"`
	TenureYears          int             `json:"tenureYears"`
}

// GratuityResult retains both the raw formula value and the capped payout.
type GratuityResult struct {
	RoundedYears int             `json:"roundedYears"`
	RawGratuity  decimal.Decimal `json:"rawGratuity"`
	Gratuity     decimal.Decimal `json:"gratuity"`
	Capped       bool            `json:"capped"`
}

// SWPMonth is one month of a withdrawal simulation.
type SWPMonth struct {
	Month          int             `json:"month"`
	InterestEarned decimal.Decimal `json:"interestEarned"`
	Withdrawal     decimal.Decimal `json:"withdrawal"`
	Balance        decimal.Decimal `json:"balance"`
}

// SWPResult reports the withdrawal simulation outcome.
type SWPResult struct {
	InvestedAmount  decimal.Decimal `json:"investedAmount"`
	TotalWithdrawal decimal.Decimal `json:"totalWithdrawal"`
	FinalValue      decimal.Decimal `json:"finalValue"`
	MonthsSustained int             `json:"monthsSustained"`
	Schedule        []SWPMonth      `json:"schedule,omitempty"`
}

// FieldError flags a raw input that sits below its field minimum. It is
// display metadata only; the calculation has already proceeded with the
// substituted minimum.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MinFieldError builds the below-minimum validation message for a field.
func MinFieldError(field string, lim FieldLimit) FieldError {
	return FieldError{
		Field:   field,
		Message: fmt.Sprintf("Minimum value allowed is %s", strconv.FormatFloat(lim.Min, 'f', -1, 64)),
	}
}
