package compare

import (
	"context"
	"fmt"

	"github.com/paisacalc/paisa/internal/calculation"
	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
)

// CompareEngine runs the same monthly budget and horizon through several
// investment strategies so their maturities can be compared side by side.
type CompareEngine struct{}

// NewCompareEngine creates a comparison engine.
func NewCompareEngine() *CompareEngine {
	return &CompareEngine{}
}

// CompareOptions configures a comparison run.
type CompareOptions struct {
	MonthlyBudget float64 // Amount invested each month under every strategy
	Years         float64 // Common investment horizon
	EquityRatePct float64 // Expected market return for SIP strategies
	RDRatePct     float64 // Bank recurring deposit rate
	StepUpPct     float64 // Annual increase for the step-up strategy
}

// Compare evaluates the strategies and reports deltas against plain SIP.
func (ce *CompareEngine) Compare(ctx context.Context, options CompareOptions) (*ComparisonSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if options.MonthlyBudget <= 0 {
		return nil, fmt.Errorf("monthly budget must be positive, got %v", options.MonthlyBudget)
	}
	if options.Years <= 0 {
		return nil, fmt.Errorf("investment horizon must be positive, got %v years", options.Years)
	}
	if options.StepUpPct == 0 {
		options.StepUpPct = domain.StepUpPct.Default
	}

	base := ce.strategyResult("SIP", "Fixed monthly SIP at the expected market rate",
		calculation.CalculateSIP(domain.SIPInput{
			MonthlyInvestment: options.MonthlyBudget,
			AnnualRatePct:     options.EquityRatePct,
			Years:             options.Years,
		}))

	stepUp := ce.strategyResult("Step-Up SIP",
		fmt.Sprintf("SIP with a %.0f%% annual increase", options.StepUpPct),
		calculation.CalculateStepUpSIP(domain.StepUpSIPInput{
			MonthlyInvestment: options.MonthlyBudget,
			AnnualRatePct:     options.EquityRatePct,
			Years:             options.Years,
			StepUpPct:         options.StepUpPct,
		}))

	rdResult := calculation.CalculateRD(domain.RDInput{
		MonthlyDeposit: options.MonthlyBudget,
		AnnualRatePct:  options.RDRatePct,
		Tenure:         options.Years,
		Unit:           domain.UnitYears,
	})
	rd := ce.strategyResult("Recurring Deposit", "Bank RD at the guaranteed rate", rdResult.Result)

	alternatives := []StrategyResult{stepUp, rd}
	for i := range alternatives {
		ce.applyDeltas(&alternatives[i], &base)
	}

	compSet := &ComparisonSet{
		MonthlyBudget:      decimal.NewFromFloat(options.MonthlyBudget).Round(0),
		Years:              options.Years,
		BaseStrategyName:   base.StrategyName,
		BaseResult:         &base,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = ce.buildRecommendations(compSet)
	return compSet, nil
}

func (ce *CompareEngine) strategyResult(name, description string, result domain.Result) StrategyResult {
	return StrategyResult{
		StrategyName:     name,
		Description:      description,
		InvestedAmount:   result.InvestedAmount,
		EstimatedReturns: result.EstimatedReturns,
		TotalValue:       result.TotalValue,
	}
}

func (ce *CompareEngine) applyDeltas(alt, base *StrategyResult) {
	alt.ValueDiffFromBase = alt.TotalValue.Sub(base.TotalValue)
	if !base.TotalValue.IsZero() {
		alt.ValuePctFromBase = alt.ValueDiffFromBase.Div(base.TotalValue).Mul(decimal.NewFromInt(100)).Round(1)
	}
}

func (ce *CompareEngine) buildRecommendations(compSet *ComparisonSet) []string {
	var recs []string

	best := compSet.Best()
	if best != nil && best != compSet.BaseResult {
		recs = append(recs, fmt.Sprintf("%s delivers the highest maturity, %s more than %s",
			best.StrategyName, best.ValueDiffFromBase.StringFixed(0), compSet.BaseStrategyName))
	}

	for _, alt := range compSet.AlternativeResults {
		if alt.StrategyName == "Recurring Deposit" && alt.ValueDiffFromBase.LessThan(decimal.Zero) {
			recs = append(recs, "the RD trails the market strategies but its maturity is guaranteed")
		}
	}
	return recs
}
