package compare

import (
	"fmt"
	"strings"

	"github.com/paisacalc/paisa/pkg/moneyfmt"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table.
type TableFormatter struct{}

// Format generates a formatted table comparing strategies.
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("INVESTMENT STRATEGY COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 78) + "\n")
	sb.WriteString(fmt.Sprintf("Monthly Budget: %s\n", moneyfmt.Rupees(compSet.MonthlyBudget)))
	sb.WriteString(fmt.Sprintf("Horizon:        %g years\n", compSet.Years))
	sb.WriteString("\n")

	nameWidth := 20
	numWidth := 18

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Strategy",
		numWidth, "Invested",
		numWidth, "Returns",
		numWidth, "Maturity"))
	sb.WriteString(strings.Repeat("-", 78) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	for i := range compSet.AlternativeResults {
		sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
	}
	sb.WriteString(strings.Repeat("=", 78) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 78) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("%-*s %s%s (%s%%)\n",
				nameWidth, alt.StrategyName,
				tf.deltaSymbol(alt.ValueDiffFromBase),
				moneyfmt.Rupees(alt.ValueDiffFromBase.Abs()),
				alt.ValuePctFromBase.StringFixed(1)))
		}
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nNOTES\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString("  - " + rec + "\n")
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(r *StrategyResult, nameWidth, numWidth int, isBase bool) string {
	name := r.StrategyName
	if isBase {
		name += " (base)"
	}
	return fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, name,
		numWidth, moneyfmt.Rupees(r.InvestedAmount),
		numWidth, moneyfmt.Rupees(r.EstimatedReturns),
		numWidth, moneyfmt.Rupees(r.TotalValue))
}

func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	if d.LessThan(decimal.Zero) {
		return "-"
	}
	return "+"
}
