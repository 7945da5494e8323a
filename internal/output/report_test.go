package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/paisacalc/paisa/internal/calculation"
	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFormatterByName(t *testing.T) {
	assert.Equal(t, "console", GetFormatterByName("console").Name())
	assert.Equal(t, "console", GetFormatterByName("").Name(), "empty selects the default")
	assert.Equal(t, "json", GetFormatterByName("json").Name())
	assert.Equal(t, "csv", GetFormatterByName("csv").Name())
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestConsoleFormatter(t *testing.T) {
	s := Summarize("sip", domain.NewResult(decimal.NewFromInt(600000), decimal.NewFromInt(1161695)))
	s.Errors = append(s.Errors, domain.MinFieldError("monthlyInvestment", domain.SIPMonthly))

	data, err := ConsoleFormatter{}.Format(s)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "SIP")
	assert.Contains(t, text, "Invested Amount")
	assert.Contains(t, text, "₹6,00,000")
	assert.Contains(t, text, "₹11,61,695")
	assert.Contains(t, text, "Minimum value allowed is 100")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	s := Summarize("gratuity", calculation.CalculateGratuity(domain.GratuityInput{
		MonthlySalary: 100000, YearsOfService: 40,
	}))

	data, err := JSONFormatter{}.Format(s)
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "gratuity", decoded.Product)

	joined := ""
	for _, l := range decoded.Lines {
		joined += l.Label + "=" + l.Value + ";"
	}
	assert.Contains(t, joined, "Capped=yes")
	assert.Contains(t, joined, "₹10,00,000")
}

func TestCSVFormatter(t *testing.T) {
	s := Summarize("rd", calculation.CalculateRD(domain.RDInput{
		MonthlyDeposit: 5000, AnnualRatePct: 0, Tenure: 12, Unit: domain.UnitMonths,
	}))

	data, err := CSVFormatter{}.Format(s)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "label,value", lines[0])
	assert.Contains(t, string(data), "Total Months,12")
}

func TestSummarizeSWP(t *testing.T) {
	result := calculation.CalculateSWP(domain.SWPInput{
		Principal: 100000, MonthlyWithdrawal: 10000, AnnualRatePct: 8, Years: 5,
	})
	s := Summarize("swp", result)

	labels := make([]string, 0, len(s.Lines))
	for _, l := range s.Lines {
		labels = append(labels, l.Label)
	}
	assert.Contains(t, labels, "Total Withdrawal")
	assert.Contains(t, labels, "Final Value")
	assert.Contains(t, labels, "Months Sustained")
}

func TestSWPSchedulePDFWrites(t *testing.T) {
	result := calculation.CalculateSWP(domain.SWPInput{
		Principal: 100000, MonthlyWithdrawal: 10000, AnnualRatePct: 8, Years: 1,
	})

	report := SWPSchedulePDF(result)
	assert.Len(t, report.Rows, len(result.Schedule))

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output must be a PDF document")
}

func TestYearSchedulePDF(t *testing.T) {
	result := calculation.CalculateSSY(domain.SSYInput{YearlyInvestment: 10000, AnnualRatePct: 8.2, StartYear: 2021})

	report := YearSchedulePDF("Sukanya Samriddhi Yojana", "ssy", result, result.Schedule)
	require.Len(t, report.Rows, domain.SSYMaturityYears)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))
	assert.Positive(t, buf.Len())
}
