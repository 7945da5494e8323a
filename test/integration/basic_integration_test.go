package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/paisacalc/paisa/internal/calculation"
	"github.com/paisacalc/paisa/internal/compare"
	"github.com/paisacalc/paisa/internal/config"
	"github.com/paisacalc/paisa/internal/domain"
	"github.com/paisacalc/paisa/internal/goalseek"
	"github.com/paisacalc/paisa/internal/output"
	"github.com/paisacalc/paisa/internal/server"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestBasicIntegration exercises the engine end to end: configuration
// loading, every product calculation, and output generation.
func TestBasicIntegration(t *testing.T) {
	t.Run("configuration_loading", func(t *testing.T) {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile("../testdata/schemes.yaml")
		require.NoError(t, err, "Should load configuration successfully")
		require.NotNil(t, cfg)

		assert.Equal(t, 7.1, cfg.PPFRatePct)
		assert.Equal(t, 2000000.0, cfg.GratuityCap)
		assert.True(t, cfg.SSYCalibration)
		assert.Contains(t, cfg.Limits, "sip_monthly")
	})

	t.Run("every_product_produces_a_result", func(t *testing.T) {
		results := map[string]domain.Result{
			"sip": calculation.CalculateSIP(domain.SIPInput{
				MonthlyInvestment: 5000, AnnualRatePct: 12, Years: 10}),
			"lumpsum": calculation.CalculateLumpsum(domain.LumpsumInput{
				Principal: 100000, AnnualRatePct: 10, Years: 5}),
			"stepup-sip": calculation.CalculateStepUpSIP(domain.StepUpSIPInput{
				MonthlyInvestment: 5000, AnnualRatePct: 12, Years: 10, StepUpPct: 10}),
			"fd": calculation.CalculateFD(domain.FDInput{
				Principal: 100000, AnnualRatePct: 7, Tenure: 5, Unit: domain.UnitYears}),
			"rd": calculation.CalculateRD(domain.RDInput{
				MonthlyDeposit: 5000, AnnualRatePct: 7, Tenure: 3, Unit: domain.UnitYears}).Result,
			"ppf": calculation.CalculatePPF(domain.PPFInput{
				YearlyInvestment: 100000, AnnualRatePct: 7.1, Years: 15}),
			"nsc": calculation.CalculateNSC(domain.NSCInput{
				Principal: 100000, AnnualRatePct: 7.7, Frequency: domain.CompoundYearly}),
			"ssy": calculation.CalculateSSY(domain.SSYInput{
				YearlyInvestment: 100000, AnnualRatePct: 8.2, StartYear: 2024}).Result,
			"epf": calculation.CalculateEPF(domain.EPFInput{
				MonthlySalary: 50000, ContributionPct: 12, AnnualIncrease: 5,
				AnnualRatePct: 8.25, Age: 30}).Result,
			"nps": calculation.CalculateNPS(domain.NPSInput{
				MonthlyInvestment: 10000, AnnualRatePct: 10, Age: 30}).Result,
			"simple-interest": calculation.CalculateSimpleInterest(domain.SimpleInterestInput{
				Principal: 100000, AnnualRatePct: 8, Years: 5}),
			"compound-interest": calculation.CalculateCompoundInterest(domain.CompoundInterestInput{
				Principal: 100000, AnnualRatePct: 8, Years: 5, Frequency: domain.CompoundQuarterly}),
			"mf-return": calculation.CalculateMFReturn(domain.MFReturnInput{
				Principal: 100000, AnnualRatePct: 12, Years: 5}),
		}

		for product, result := range results {
			assert.True(t, result.InvestedAmount.GreaterThan(decimal.Zero),
				"%s invested amount should be positive", product)
			assert.True(t, result.TotalValue.GreaterThanOrEqual(result.InvestedAmount),
				"%s maturity should cover the investment", product)
			expected := result.TotalValue.Sub(result.InvestedAmount)
			assert.True(t, result.EstimatedReturns.Equal(expected),
				"%s returns must equal maturity minus investment", product)
		}
	})

	t.Run("output_generation", func(t *testing.T) {
		result := calculation.CalculateSIP(domain.SIPInput{
			MonthlyInvestment: 5000, AnnualRatePct: 12, Years: 10,
		})
		summary := output.Summarize("sip", result)

		for _, name := range []string{"console", "json", "csv"} {
			formatter := output.GetFormatterByName(name)
			require.NotNil(t, formatter, name)
			data, err := formatter.Format(summary)
			require.NoError(t, err, name)
			assert.NotEmpty(t, data, name)
		}
	})
}

// TestGoalSeekRoundTrip solves for a SIP amount and verifies the calculation
// engine reproduces the target.
func TestGoalSeekRoundTrip(t *testing.T) {
	target := decimal.NewFromInt(5_000_000)

	solver := goalseek.NewDefaultSolver()
	solved, err := solver.Solve(context.Background(), goalseek.Request{
		Target:        goalseek.TargetMonthlySIP,
		TargetCorpus:  target,
		AnnualRatePct: 12,
		Years:         20,
	})
	require.NoError(t, err)
	require.True(t, solved.Converged, solved.ConvergenceInfo)

	check := calculation.CalculateSIP(domain.SIPInput{
		MonthlyInvestment: solved.RequiredAmount.InexactFloat64(),
		AnnualRatePct:     12,
		Years:             20,
	})
	diff := check.TotalValue.Sub(target).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromInt(1000)),
		"solved SIP misses the target by %s", diff)
}

// TestCompareAgainstIndividualCalculations checks the comparison engine
// agrees with direct product calculations.
func TestCompareAgainstIndividualCalculations(t *testing.T) {
	compSet, err := compare.NewCompareEngine().Compare(context.Background(), compare.CompareOptions{
		MonthlyBudget: 5000,
		Years:         10,
		EquityRatePct: 12,
		RDRatePct:     7,
		StepUpPct:     10,
	})
	require.NoError(t, err)

	direct := calculation.CalculateSIP(domain.SIPInput{
		MonthlyInvestment: 5000, AnnualRatePct: 12, Years: 10,
	})
	assert.True(t, compSet.BaseResult.TotalValue.Equal(direct.TotalValue),
		"comparison base must match the standalone SIP calculation")
}

// TestServerRoundTrip drives the HTTP surface against the same inputs the
// engine tests use.
func TestServerRoundTrip(t *testing.T) {
	cfg := &server.Config{
		CacheTTL:    time.Minute,
		RateLimit:   100,
		RateWindow:  time.Minute,
		ServiceName: "paisa-integration",
	}
	srv := server.New(cfg, zap.NewNop(), server.NewMemoryCache())
	defer srv.Close()
	handler := srv.Handler()

	body := `{"monthlyInvestment": 5000, "annualRatePct": 12, "years": 10}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate/sip", strings.NewReader(body))
	req.RemoteAddr = "10.1.1.1:40000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Result struct {
			TotalValue string `json:"totalValue"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	direct := calculation.CalculateSIP(domain.SIPInput{
		MonthlyInvestment: 5000, AnnualRatePct: 12, Years: 10,
	})
	assert.Equal(t, direct.TotalValue.String(), resp.Result.TotalValue,
		"HTTP response must match the engine")
}

// TestPDFReportGeneration renders the SWP schedule end to end.
func TestPDFReportGeneration(t *testing.T) {
	result := calculation.CalculateSWP(domain.SWPInput{
		Principal: 500000, MonthlyWithdrawal: 10000, AnnualRatePct: 8, Years: 5,
	})
	require.NotEmpty(t, result.Schedule)

	var buf bytes.Buffer
	require.NoError(t, output.SWPSchedulePDF(result).Write(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
