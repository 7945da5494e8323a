package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/paisacalc/paisa/pkg/moneyfmt"
	"github.com/shopspring/decimal"
)

// Summary is the product-agnostic view of a calculation that every
// formatter renders: a labelled list of figures plus any validation flags
// raised for out-of-range raw input.
type Summary struct {
	Product string             `json:"product"`
	Lines   []Line             `json:"lines"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// Line is one labelled figure in a summary.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func moneyLine(label string, d decimal.Decimal) Line {
	return Line{Label: label, Value: moneyfmt.Rupees(d)}
}

// Summarize flattens a calculator result into display lines.
func Summarize(product string, result any) Summary {
	s := Summary{Product: product}
	switch r := result.(type) {
	case domain.Result:
		s.Lines = resultLines(r)
	case domain.RDResult:
		s.Lines = append(resultLines(r.Result),
			Line{Label: "Total Months", Value: fmt.Sprintf("%d", r.TotalMonths)})
	case domain.SSYResult:
		s.Lines = append(resultLines(r.Result),
			Line{Label: "Maturity Year", Value: fmt.Sprintf("%d", r.MaturityYear)})
	case domain.EPFResult:
		s.Lines = resultLines(r.Result)
	case domain.NPSResult:
		s.Lines = append(resultLines(r.Result),
			moneyLine("Min Annuity Investment (40%)", r.MinAnnuityInvestment),
			moneyLine("Lumpsum Value (60%)", r.LumpsumValue),
			Line{Label: "Tenure", Value: fmt.Sprintf("%d years", r.TenureYears)})
	case domain.GratuityResult:
		s.Lines = []Line{
			{Label: "Years of Service (rounded)", Value: fmt.Sprintf("%d", r.RoundedYears)},
			moneyLine("Gratuity Payable", r.Gratuity),
		}
		if r.Capped {
			s.Lines = append(s.Lines,
				moneyLine("Before Statutory Cap", r.RawGratuity),
				Line{Label: "Capped", Value: "yes"})
		}
	case domain.SWPResult:
		s.Lines = []Line{
			moneyLine("Total Investment", r.InvestedAmount),
			moneyLine("Total Withdrawal", r.TotalWithdrawal),
			moneyLine("Final Value", r.FinalValue),
			{Label: "Months Sustained", Value: fmt.Sprintf("%d", r.MonthsSustained)},
		}
	default:
		s.Lines = []Line{{Label: "Result", Value: fmt.Sprintf("%v", result)}}
	}
	return s
}

func resultLines(r domain.Result) []Line {
	return []Line{
		moneyLine("Invested Amount", r.InvestedAmount),
		moneyLine("Estimated Returns", r.EstimatedReturns),
		moneyLine("Total Value", r.TotalValue),
	}
}

// Formatter renders a summary for one output format.
type Formatter interface {
	Name() string
	Format(s Summary) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name, or nil when
// the format is unknown.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console", "":
		return ConsoleFormatter{}
	case "json":
		return JSONFormatter{}
	case "csv":
		return CSVFormatter{}
	default:
		return nil
	}
}

// ConsoleFormatter renders an aligned label/value block.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(s Summary) ([]byte, error) {
	var sb strings.Builder
	title := strings.ToUpper(s.Product)
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", len(title)) + "\n")

	width := 0
	for _, l := range s.Lines {
		if len(l.Label) > width {
			width = len(l.Label)
		}
	}
	for _, l := range s.Lines {
		sb.WriteString(fmt.Sprintf("%-*s  %s\n", width, l.Label, l.Value))
	}
	for _, e := range s.Errors {
		sb.WriteString(fmt.Sprintf("! %s: %s\n", e.Field, e.Message))
	}
	return []byte(sb.String()), nil
}

// JSONFormatter renders the summary as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(s Summary) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	return append(data, '\n'), nil
}

// CSVFormatter renders label,value rows.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(s Summary) ([]byte, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write([]string{"label", "value"}); err != nil {
		return nil, err
	}
	for _, l := range s.Lines {
		if err := w.Write([]string{l.Label, l.Value}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
