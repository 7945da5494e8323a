package calculation

import (
	"testing"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateSimpleInterest(t *testing.T) {
	result := CalculateSimpleInterest(domain.SimpleInterestInput{
		Principal: 100000, AnnualRatePct: 6, Years: 2,
	})
	assert.True(t, result.EstimatedReturns.Equal(decimal.NewFromInt(12000)))
	assert.True(t, result.TotalValue.Equal(decimal.NewFromInt(112000)))
}

func TestCalculateSimpleInterestZeroRate(t *testing.T) {
	result := CalculateSimpleInterest(domain.SimpleInterestInput{
		Principal: 100000, AnnualRatePct: 0, Years: 2,
	})
	assert.True(t, result.EstimatedReturns.IsZero())
	assert.True(t, result.TotalValue.Equal(result.InvestedAmount))
}

func TestCalculateCompoundInterest(t *testing.T) {
	tests := []struct {
		name      string
		frequency domain.CompoundingFrequency
		want      int64
	}{
		// 100000 at 10% over 2 years.
		{"yearly", domain.CompoundYearly, 121000},
		{"half-yearly", domain.CompoundHalfYearly, 121551},
		{"quarterly", domain.CompoundQuarterly, 121840},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateCompoundInterest(domain.CompoundInterestInput{
				Principal: 100000, AnnualRatePct: 10, Years: 2, Frequency: tt.frequency,
			})
			assert.True(t, result.TotalValue.Equal(decimal.NewFromInt(tt.want)),
				"expected %d, got %s", tt.want, result.TotalValue)
		})
	}
}

func TestCompoundBeatsSimpleInterest(t *testing.T) {
	si := CalculateSimpleInterest(domain.SimpleInterestInput{Principal: 100000, AnnualRatePct: 8, Years: 5})
	ci := CalculateCompoundInterest(domain.CompoundInterestInput{Principal: 100000, AnnualRatePct: 8, Years: 5, Frequency: domain.CompoundYearly})
	assert.True(t, ci.TotalValue.GreaterThan(si.TotalValue))
}
