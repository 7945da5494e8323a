package calculation

import (
	"testing"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateEPFOneYearToRetirement(t *testing.T) {
	result := CalculateEPF(domain.EPFInput{
		MonthlySalary: 10000, ContributionPct: 12, AnnualIncrease: 0, AnnualRatePct: 8.25, Age: 57,
	})

	// 12 months of 1200 employee plus the hidden equal employer credit.
	assert.True(t, result.InvestedAmount.Equal(decimal.NewFromInt(28800)),
		"got %s", result.InvestedAmount)
	assert.True(t, result.TotalValue.GreaterThan(result.InvestedAmount))
	require.Len(t, result.Schedule, 1)
	assert.True(t, result.Schedule[0].Balance.Equal(result.TotalValue))
}

func TestCalculateEPFSalaryEscalation(t *testing.T) {
	result := CalculateEPF(domain.EPFInput{
		MonthlySalary: 10000, ContributionPct: 12, AnnualIncrease: 10, AnnualRatePct: 8.25, Age: 56,
	})

	// Year one credits 12*2400; months 13-24 run on the escalated 11000
	// salary and credit 12*2640.
	assert.True(t, result.InvestedAmount.Equal(decimal.NewFromInt(60480)),
		"got %s", result.InvestedAmount)
	require.Len(t, result.Schedule, 2)
	assert.True(t, result.Schedule[0].Credit.Equal(decimal.NewFromInt(28800)))
	assert.True(t, result.Schedule[1].Credit.Equal(decimal.NewFromInt(31680)))
}

func TestCalculateEPFDefaultsPublishedRate(t *testing.T) {
	explicit := CalculateEPF(domain.EPFInput{MonthlySalary: 50000, ContributionPct: 12, AnnualRatePct: domain.EPFDefaultRatePct, Age: 30})
	implicit := CalculateEPF(domain.EPFInput{MonthlySalary: 50000, ContributionPct: 12, Age: 30})
	assert.True(t, explicit.TotalValue.Equal(implicit.TotalValue))
}

func TestCalculateNPS(t *testing.T) {
	result := CalculateNPS(domain.NPSInput{MonthlyInvestment: 10000, AnnualRatePct: 10, Age: 30})

	assert.Equal(t, 30, result.TenureYears)
	assert.True(t, result.InvestedAmount.Equal(decimal.NewFromInt(3_600_000)))
	assert.True(t, result.TotalValue.GreaterThan(result.InvestedAmount))

	// The annuity split partitions the maturity 40/60.
	assert.True(t, result.MinAnnuityInvestment.Add(result.LumpsumValue).Equal(result.TotalValue))
	assert.True(t, result.MinAnnuityInvestment.Equal(result.TotalValue.Mul(decimal.NewFromFloat(0.4)).Round(0)))
}

func TestCalculateNPSZeroRate(t *testing.T) {
	result := CalculateNPS(domain.NPSInput{MonthlyInvestment: 1000, AnnualRatePct: 0, Age: 55})
	assert.True(t, result.TotalValue.Equal(result.InvestedAmount))
	assert.True(t, result.EstimatedReturns.IsZero())
}

func TestCalculateGratuity(t *testing.T) {
	tests := []struct {
		name         string
		in           domain.GratuityInput
		wantYears    int
		wantGratuity int64
		wantCapped   bool
	}{
		{
			"capped at statutory ceiling",
			domain.GratuityInput{MonthlySalary: 100000, YearsOfService: 40},
			40, 1_000_000, true,
		},
		{
			"under the ceiling",
			domain.GratuityInput{MonthlySalary: 30000, YearsOfService: 10},
			// 10 * 30000 * 15/26 = 173076.9...
			10, 173_077, false,
		},
		{
			"service years round to nearest",
			domain.GratuityInput{MonthlySalary: 30000, YearsOfService: 10.6},
			11, 190_385, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateGratuity(tt.in)
			assert.Equal(t, tt.wantYears, result.RoundedYears)
			assert.Equal(t, tt.wantCapped, result.Capped)
			assert.True(t, result.Gratuity.Equal(decimal.NewFromInt(tt.wantGratuity)),
				"expected %d, got %s", tt.wantGratuity, result.Gratuity)
		})
	}
}

func TestCalculateGratuityRetainsRawValue(t *testing.T) {
	result := CalculateGratuity(domain.GratuityInput{MonthlySalary: 100000, YearsOfService: 40})
	// 40 * 100000 * 15/26 = 2307692.3...
	assert.True(t, result.RawGratuity.Equal(decimal.NewFromInt(2_307_692)),
		"got %s", result.RawGratuity)
	assert.True(t, result.RawGratuity.GreaterThan(result.Gratuity))
}

func TestCalculateGratuityCustomCap(t *testing.T) {
	result := CalculateGratuity(domain.GratuityInput{MonthlySalary: 100000, YearsOfService: 40, Cap: 2_000_000})
	assert.True(t, result.Gratuity.Equal(decimal.NewFromInt(2_000_000)))
	assert.True(t, result.Capped)
}
