package goalseek

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Target selects which input the solver searches over.
type Target string

const (
	// TargetMonthlySIP finds the monthly SIP that reaches the corpus.
	TargetMonthlySIP Target = "monthly_sip"
	// TargetLumpsum finds the one-time investment that reaches the corpus.
	TargetLumpsum Target = "lumpsum"
)

// Request describes a goal-seek: reach TargetCorpus at the given rate and
// horizon by varying the target amount.
type Request struct {
	Target        Target
	TargetCorpus  decimal.Decimal
	AnnualRatePct float64
	Years         float64
	Tolerance     decimal.Decimal
	MaxIterations int
}

// Result reports the solved amount and how the search converged.
type Result struct {
	Target          Target
	RequiredAmount  decimal.Decimal
	AchievedValue   decimal.Decimal
	Iterations      int
	Converged       bool
	ConvergenceInfo string
}

// SolverOptions carries the search defaults.
type SolverOptions struct {
	MaxIterations int
	Tolerance     decimal.Decimal
}

// DefaultSolverOptions returns the defaults: converge to within one rupee in
// at most 64 bisections.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: 64,
		Tolerance:     decimal.NewFromInt(1),
	}
}

// GoalSeekError wraps a failure with the operation that produced it.
type GoalSeekError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *GoalSeekError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("goalseek %s: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("goalseek %s: %s", e.Operation, e.Message)
}

func (e *GoalSeekError) Unwrap() error { return e.Cause }
