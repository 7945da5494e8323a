package calculation

import (
	"testing"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePPFYearlyCredit(t *testing.T) {
	// Two years at 10%: (10000*1.1 + 10000) * 1.1 = 23100.
	result := CalculatePPF(domain.PPFInput{YearlyInvestment: 10000, AnnualRatePct: 10, Years: 15})
	assert.True(t, result.InvestedAmount.Equal(decimal.NewFromInt(150000)))
	assert.True(t, result.TotalValue.GreaterThan(result.InvestedAmount))
}

func TestCalculatePPFEmptyInputFallsBack(t *testing.T) {
	// Empty fields calculate at the bound minimums: 15 years of 500.
	result := CalculatePPF(domain.PPFInput{YearlyInvestment: 0, AnnualRatePct: 10, Years: 0})
	assert.True(t, result.InvestedAmount.Equal(decimal.NewFromInt(int64(domain.PPFYearly.Min*domain.PPFYears.Min))),
		"empty input calculates at the bound minimums, got %s", result.InvestedAmount)
}

func TestCalculatePPFDefaultsPublishedRate(t *testing.T) {
	explicit := CalculatePPF(domain.PPFInput{YearlyInvestment: 10000, AnnualRatePct: domain.PPFDefaultRatePct, Years: 15})
	implicit := CalculatePPF(domain.PPFInput{YearlyInvestment: 10000, Years: 15})
	assert.True(t, explicit.TotalValue.Equal(implicit.TotalValue))
}

func TestCalculateNSC(t *testing.T) {
	tests := []struct {
		name      string
		frequency domain.CompoundingFrequency
		want      int64
	}{
		// 100000 * 1.08^5 and 100000 * 1.04^10.
		{"yearly", domain.CompoundYearly, 146933},
		{"half-yearly", domain.CompoundHalfYearly, 148024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateNSC(domain.NSCInput{Principal: 100000, AnnualRatePct: 8, Frequency: tt.frequency})
			assert.True(t, result.TotalValue.Equal(decimal.NewFromInt(tt.want)),
				"expected %d, got %s", tt.want, result.TotalValue)
		})
	}
}

func TestCalculateNSCQuarterlyFallsBackToHalfYearly(t *testing.T) {
	q := CalculateNSC(domain.NSCInput{Principal: 100000, AnnualRatePct: 8, Frequency: domain.CompoundQuarterly})
	h := CalculateNSC(domain.NSCInput{Principal: 100000, AnnualRatePct: 8, Frequency: domain.CompoundHalfYearly})
	assert.True(t, q.TotalValue.Equal(h.TotalValue))
}

func TestCalculateSSYSchedule(t *testing.T) {
	result := CalculateSSY(domain.SSYInput{YearlyInvestment: 10000, AnnualRatePct: 8.2, StartYear: 2021})

	assert.True(t, result.InvestedAmount.Equal(decimal.NewFromInt(150000)),
		"fifteen contributions of 10000, got %s", result.InvestedAmount)
	assert.Equal(t, 2042, result.MaturityYear)
	assert.True(t, result.TotalValue.GreaterThan(result.InvestedAmount))

	require.Len(t, result.Schedule, domain.SSYMaturityYears)
	contributions := 0
	for _, row := range result.Schedule {
		if !row.Credit.IsZero() {
			contributions++
		}
	}
	assert.Equal(t, domain.SSYContributionYears, contributions)

	// Balance keeps growing after deposits stop.
	last := result.Schedule[len(result.Schedule)-1]
	penultimate := result.Schedule[len(result.Schedule)-2]
	assert.True(t, last.Balance.GreaterThan(penultimate.Balance))
	assert.True(t, last.Balance.Equal(result.TotalValue))
}

func TestCalculateSSYCalibrationRaisesMaturity(t *testing.T) {
	plain := CalculateSSY(domain.SSYInput{YearlyInvestment: 150000, AnnualRatePct: 8.2, StartYear: 2024})
	tuned := CalculateSSY(domain.SSYInput{YearlyInvestment: 150000, AnnualRatePct: 8.2, StartYear: 2024, Calibrate: true})
	assert.True(t, tuned.TotalValue.GreaterThan(plain.TotalValue))
	assert.True(t, tuned.InvestedAmount.Equal(plain.InvestedAmount))
}
