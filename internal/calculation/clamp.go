package calculation

import (
	"math"
	"strconv"
	"strings"

	"github.com/paisacalc/paisa/internal/domain"
)

// ClampInput applies the entry-time policy for a raw numeric field: values
// that are not finite collapse to 0 (the "incomplete input" marker) and
// values above the maximum are silently truncated. There is deliberately no
// floor clamp here; typing below the minimum stays visible so it can be
// flagged, and only the calculation substitutes the minimum.
func ClampInput(raw float64, lim domain.FieldLimit) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0
	}
	if lim.Max > 0 && raw > lim.Max {
		return lim.Max
	}
	return raw
}

// ParseField is the string boundary for UI controls: empty or non-numeric
// text maps to 0, everything else goes through ClampInput.
func ParseField(raw string, lim domain.FieldLimit) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return ClampInput(v, lim)
}

// Safe returns the value the numeric formulas actually use: the raw value
// floored to the field minimum and capped at the maximum. Invalid or low
// input therefore never produces a negative or nonsensical result.
func Safe(raw float64, lim domain.FieldLimit) float64 {
	if raw < lim.Min {
		return lim.Min
	}
	if lim.Max > 0 && raw > lim.Max {
		return lim.Max
	}
	return raw
}

// CheckMin flags a raw value sitting below its field minimum. The returned
// error is display metadata; callers still calculate with Safe.
func CheckMin(field string, raw float64, lim domain.FieldLimit) *domain.FieldError {
	if raw < lim.Min {
		e := domain.MinFieldError(field, lim)
		return &e
	}
	return nil
}
