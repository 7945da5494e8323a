package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenureSelectionCycle(t *testing.T) {
	defaults := [3]float64{FDTenureYears.Default, FDTenureMonths.Default, FDTenureDays.Default}

	sel := TenureSelection{Active: UnitYears}
	sel.SetValue(2)

	sel.Cycle(FDUnitCycle, defaults)
	assert.Equal(t, UnitMonths, sel.Active)
	assert.Equal(t, FDTenureMonths.Default, sel.Value(), "entering an unset unit seeds its default")

	sel.SetValue(18)
	sel.Cycle(FDUnitCycle, defaults)
	assert.Equal(t, UnitDays, sel.Active)
	assert.Equal(t, FDTenureDays.Default, sel.Value())

	sel.Cycle(FDUnitCycle, defaults)
	assert.Equal(t, UnitYears, sel.Active, "full cycle returns to the original unit")
	assert.Equal(t, 2.0, sel.Value(), "original value survives the round trip")

	sel.Cycle(FDUnitCycle, defaults)
	assert.Equal(t, 18.0, sel.Value(), "months value typed earlier is preserved")
}

func TestRDUnitCycleSkipsDays(t *testing.T) {
	defaults := [3]float64{RDTenureYears.Default, RDTenureMonths.Default, 0}

	sel := TenureSelection{Active: UnitYears}
	sel.SetValue(3)

	sel.Cycle(RDUnitCycle, defaults)
	assert.Equal(t, UnitMonths, sel.Active)
	sel.Cycle(RDUnitCycle, defaults)
	assert.Equal(t, UnitYears, sel.Active)
}

func TestNextFrequency(t *testing.T) {
	tests := []struct {
		name    string
		cycle   []CompoundingFrequency
		current CompoundingFrequency
		want    CompoundingFrequency
	}{
		{"NSC yearly to half-yearly", NSCFrequencyCycle, CompoundYearly, CompoundHalfYearly},
		{"NSC wraps to yearly", NSCFrequencyCycle, CompoundHalfYearly, CompoundYearly},
		{"CI quarterly wraps", CIFrequencyCycle, CompoundQuarterly, CompoundYearly},
		{"unknown falls back to cycle head", NSCFrequencyCycle, CompoundQuarterly, CompoundYearly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextFrequency(tt.cycle, tt.current))
		})
	}
}

func TestPeriodsPerYear(t *testing.T) {
	assert.Equal(t, 1, CompoundYearly.PeriodsPerYear())
	assert.Equal(t, 2, CompoundHalfYearly.PeriodsPerYear())
	assert.Equal(t, 4, CompoundQuarterly.PeriodsPerYear())
}

func TestMinFieldError(t *testing.T) {
	err := MinFieldError("monthlyInvestment", FieldLimit{Min: 100, Max: 1_000_000})
	assert.Equal(t, "monthlyInvestment", err.Field)
	assert.Equal(t, "Minimum value allowed is 100", err.Message)

	err = MinFieldError("rate", FieldLimit{Min: 0.25})
	assert.Equal(t, "Minimum value allowed is 0.25", err.Message)
}
