package compare

import (
	"github.com/shopspring/decimal"
)

// StrategyResult is one investment strategy evaluated over the common
// budget and horizon, with deltas against the base strategy.
type StrategyResult struct {
	StrategyName string `json:"strategyName"`
	Description  string `json:"description"`

	InvestedAmount   decimal.Decimal `json:"investedAmount"`
	EstimatedReturns decimal.Decimal `json:"estimatedReturns"`
	TotalValue       decimal.Decimal `json:"totalValue"`

	ValueDiffFromBase decimal.Decimal `json:"valueDiffFromBase"`
	ValuePctFromBase  decimal.Decimal `json:"valuePctFromBase"`
}

// ComparisonSet collects the base strategy and its alternatives.
type ComparisonSet struct {
	MonthlyBudget      decimal.Decimal  `json:"monthlyBudget"`
	Years              float64          `json:"years"`
	BaseStrategyName   string           `json:"baseStrategyName"`
	BaseResult         *StrategyResult  `json:"baseResult"`
	AlternativeResults []StrategyResult `json:"alternativeResults"`
	Recommendations    []string         `json:"recommendations"`
}

// Best returns the strategy with the highest maturity value.
func (cs *ComparisonSet) Best() *StrategyResult {
	best := cs.BaseResult
	for i := range cs.AlternativeResults {
		alt := &cs.AlternativeResults[i]
		if best == nil || alt.TotalValue.GreaterThan(best.TotalValue) {
			best = alt
		}
	}
	return best
}
