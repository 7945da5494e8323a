package calculation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// The SIP family derives its monthly rate by compounding conversion, so
// (1+i)^12 must reproduce 1+r/100 to floating precision.
func TestMonthlyRateCompoundingIdentity(t *testing.T) {
	for _, annual := range []float64{1, 6.5, 8.2, 12, 15, 30} {
		i := MonthlyRate(annual).InexactFloat64()
		assert.InDelta(t, 1+annual/100, math.Pow(1+i, 12), 1e-9,
			"annual rate %.2f", annual)
		assert.Greater(t, math.Abs(annual/1200-i), 1e-6,
			"compounding-derived rate must differ from naive division")
	}
}

func TestMonthlyRateZero(t *testing.T) {
	assert.True(t, MonthlyRate(0).IsZero())
}

// RD keeps the nominal r/1200 convention. This is a regression test pinning
// the asymmetry against the SIP family, not a bug to unify.
func TestNominalMonthlyRateIsSimpleDivision(t *testing.T) {
	for _, annual := range []float64{1, 6.5, 12} {
		want := decimal.NewFromFloat(annual / 1200)
		assert.True(t, NominalMonthlyRate(annual).Equal(want),
			"expected %s, got %s", want, NominalMonthlyRate(annual))
	}
}
