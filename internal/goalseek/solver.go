package goalseek

import (
	"context"
	"fmt"

	"github.com/paisacalc/paisa/internal/calculation"
	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver finds the investment amount that reaches a target corpus by binary
// search. Maturity is strictly increasing in the amount for every product,
// so bisection always converges.
type Solver struct {
	Options SolverOptions
}

// NewSolver creates a solver with the given options.
func NewSolver(options SolverOptions) *Solver {
	return &Solver{Options: options}
}

// NewDefaultSolver creates a solver with default options.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultSolverOptions())
}

// Solve routes the request to the target's search.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if req.TargetCorpus.LessThanOrEqual(decimal.Zero) {
		return nil, &GoalSeekError{
			Operation: "solve",
			Message:   "target corpus must be positive",
		}
	}
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	switch req.Target {
	case TargetMonthlySIP:
		lim := domain.SIPMonthly
		return s.bisect(ctx, req, lim, func(amount float64) decimal.Decimal {
			return calculation.CalculateSIP(domain.SIPInput{
				MonthlyInvestment: amount,
				AnnualRatePct:     req.AnnualRatePct,
				Years:             req.Years,
			}).TotalValue
		})
	case TargetLumpsum:
		lim := domain.LumpsumPrincipal
		return s.bisect(ctx, req, lim, func(amount float64) decimal.Decimal {
			return calculation.CalculateLumpsum(domain.LumpsumInput{
				Principal:     amount,
				AnnualRatePct: req.AnnualRatePct,
				Years:         req.Years,
			}).TotalValue
		})
	default:
		return nil, &GoalSeekError{
			Operation: "solve",
			Message:   fmt.Sprintf("unsupported target: %s", req.Target),
		}
	}
}

// bisect searches the amount range of the field limit for the value whose
// maturity hits the target corpus.
func (s *Solver) bisect(ctx context.Context, req Request, lim domain.FieldLimit, evaluate func(float64) decimal.Decimal) (*Result, error) {
	lo := decimal.NewFromFloat(lim.Min)
	hi := decimal.NewFromFloat(lim.Max)

	// The bounds may already decide the outcome.
	if v := evaluate(lim.Max); v.LessThan(req.TargetCorpus) {
		return &Result{
			Target:          req.Target,
			RequiredAmount:  hi,
			AchievedValue:   v,
			Converged:       false,
			ConvergenceInfo: fmt.Sprintf("target %s unreachable within the field maximum", req.TargetCorpus.StringFixed(0)),
		}, nil
	}
	if v := evaluate(lim.Min); v.GreaterThanOrEqual(req.TargetCorpus) {
		return &Result{
			Target:          req.Target,
			RequiredAmount:  lo,
			AchievedValue:   v,
			Converged:       true,
			ConvergenceInfo: "field minimum already reaches the target",
		}, nil
	}

	var mid, achieved decimal.Decimal
	for iter := 1; iter <= req.MaxIterations; iter++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid = lo.Add(hi).Div(two).Round(2)
		achieved = evaluate(mid.InexactFloat64())

		diff := achieved.Sub(req.TargetCorpus)
		if diff.Abs().LessThanOrEqual(req.Tolerance) || hi.Sub(lo).LessThanOrEqual(decimal.NewFromFloat(0.01)) {
			info := fmt.Sprintf("converged to within %s of target", req.Tolerance.StringFixed(0))
			if diff.Abs().GreaterThan(req.Tolerance) {
				info = "amount interval collapsed; nearest reachable maturity returned"
			}
			return &Result{
				Target:          req.Target,
				RequiredAmount:  mid,
				AchievedValue:   achieved,
				Iterations:      iter,
				Converged:       true,
				ConvergenceInfo: info,
			}, nil
		}
		if diff.LessThan(decimal.Zero) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return &Result{
		Target:          req.Target,
		RequiredAmount:  mid,
		AchievedValue:   achieved,
		Iterations:      req.MaxIterations,
		Converged:       false,
		ConvergenceInfo: fmt.Sprintf("max iterations (%d) reached", req.MaxIterations),
	}, nil
}
