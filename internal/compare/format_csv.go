package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV.
type CSVFormatter struct{}

// Format generates CSV output for comparison results.
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Strategy",
		"Type",
		"Invested Amount",
		"Estimated Returns",
		"Total Value",
		"Value Diff from Base",
		"Value % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(r *StrategyResult, kind string) []string {
	return []string{
		r.StrategyName,
		kind,
		r.InvestedAmount.StringFixed(0),
		r.EstimatedReturns.StringFixed(0),
		r.TotalValue.StringFixed(0),
		r.ValueDiffFromBase.StringFixed(0),
		r.ValuePctFromBase.StringFixed(1),
	}
}
