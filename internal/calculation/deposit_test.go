package calculation

import (
	"testing"

	"github.com/paisacalc/paisa/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateFDCompound(t *testing.T) {
	result := CalculateFD(domain.FDInput{
		Principal: 100000, AnnualRatePct: 10, Tenure: 2, Unit: domain.UnitYears,
	})
	assert.True(t, result.TotalValue.Equal(decimal.NewFromInt(121000)),
		"got %s", result.TotalValue)
}

func TestCalculateFDSimple(t *testing.T) {
	tests := []struct {
		name string
		in   domain.FDInput
		want int64
	}{
		{
			"six months at six percent",
			domain.FDInput{Principal: 100000, AnnualRatePct: 6, Tenure: 6, Unit: domain.UnitMonths, SimpleMode: true},
			3000,
		},
		{
			"one year in days",
			domain.FDInput{Principal: 100000, AnnualRatePct: 6, Tenure: 365, Unit: domain.UnitDays, SimpleMode: true},
			6000,
		},
		{
			"one year in years",
			domain.FDInput{Principal: 100000, AnnualRatePct: 6, Tenure: 1, Unit: domain.UnitYears, SimpleMode: true},
			6000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateFD(tt.in)
			assert.True(t, result.EstimatedReturns.Equal(decimal.NewFromInt(tt.want)),
				"expected interest %d, got %s", tt.want, result.EstimatedReturns)
			assert.True(t, result.TotalValue.Equal(result.InvestedAmount.Add(result.EstimatedReturns)))
		})
	}
}

// Re-expressing the same simple-mode tenure in each unit of the cycle must
// not change the maturity; a full unit cycle restores the original unit.
func TestFDUnitRoundTrip(t *testing.T) {
	base := domain.FDInput{Principal: 200000, AnnualRatePct: 7, SimpleMode: true}

	inYears := base
	inYears.Tenure, inYears.Unit = 1, domain.UnitYears
	inMonths := base
	inMonths.Tenure, inMonths.Unit = 12, domain.UnitMonths
	inDays := base
	inDays.Tenure, inDays.Unit = 365, domain.UnitDays

	y := CalculateFD(inYears).TotalValue
	m := CalculateFD(inMonths).TotalValue
	d := CalculateFD(inDays).TotalValue
	assert.True(t, y.Sub(m).Abs().LessThanOrEqual(decimal.NewFromInt(1)), "years %s vs months %s", y, m)
	assert.True(t, y.Sub(d).Abs().LessThanOrEqual(decimal.NewFromInt(1)), "years %s vs days %s", y, d)

	sel := domain.TenureSelection{Active: domain.UnitYears}
	sel.SetValue(1)
	defaults := [3]float64{domain.FDTenureYears.Default, domain.FDTenureMonths.Default, domain.FDTenureDays.Default}
	sel.Cycle(domain.FDUnitCycle, defaults)
	sel.Cycle(domain.FDUnitCycle, defaults)
	sel.Cycle(domain.FDUnitCycle, defaults)
	assert.Equal(t, domain.UnitYears, sel.Active)
	assert.Equal(t, 1.0, sel.Value())
}

func TestCalculateRD(t *testing.T) {
	t.Run("zero rate returns deposits", func(t *testing.T) {
		result := CalculateRD(domain.RDInput{
			MonthlyDeposit: 5000, AnnualRatePct: 0, Tenure: 12, Unit: domain.UnitMonths,
		})
		assert.Equal(t, 12, result.TotalMonths)
		assert.True(t, result.TotalValue.Equal(decimal.NewFromInt(60000)))
		assert.True(t, result.EstimatedReturns.IsZero())
	})

	t.Run("annuity-due future value", func(t *testing.T) {
		result := CalculateRD(domain.RDInput{
			MonthlyDeposit: 5000, AnnualRatePct: 6, Tenure: 1, Unit: domain.UnitYears,
		})
		assert.Equal(t, 12, result.TotalMonths)
		// FV = 5000 * ((1.005^12 - 1)/0.005) * 1.005
		assert.InDelta(t, 61986, result.TotalValue.InexactFloat64(), 1)
	})

	t.Run("years and months tenure agree", func(t *testing.T) {
		inYears := CalculateRD(domain.RDInput{MonthlyDeposit: 2000, AnnualRatePct: 7, Tenure: 3, Unit: domain.UnitYears})
		inMonths := CalculateRD(domain.RDInput{MonthlyDeposit: 2000, AnnualRatePct: 7, Tenure: 36, Unit: domain.UnitMonths})
		assert.True(t, inYears.TotalValue.Equal(inMonths.TotalValue))
	})
}

func TestCalculateRDMonotonicInDeposit(t *testing.T) {
	prev := CalculateRD(domain.RDInput{MonthlyDeposit: 1000, AnnualRatePct: 6, Tenure: 2, Unit: domain.UnitYears})
	for _, deposit := range []float64{2000, 5000, 20000} {
		cur := CalculateRD(domain.RDInput{MonthlyDeposit: deposit, AnnualRatePct: 6, Tenure: 2, Unit: domain.UnitYears})
		assert.True(t, cur.TotalValue.GreaterThan(prev.TotalValue))
		prev = cur
	}
}
