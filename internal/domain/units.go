package domain

// TenureUnit is the unit a deposit tenure is expressed in.
type TenureUnit int

const (
	UnitYears TenureUnit = iota
	UnitMonths
	UnitDays
)

func (u TenureUnit) String() string {
	switch u {
	case UnitYears:
		return "Years"
	case UnitMonths:
		return "Months"
	case UnitDays:
		return "Days"
	default:
		return "Unknown"
	}
}

// FDUnitCycle and RDUnitCycle define the fixed order the unit pill advances
// through for each deposit product.
var (
	FDUnitCycle = []TenureUnit{UnitYears, UnitMonths, UnitDays}
	RDUnitCycle = []TenureUnit{UnitYears, UnitMonths}
)

// TenureSelection keeps one stored tenure value per unit so that switching
// units never discards what the user last typed in another unit.
type TenureSelection struct {
	Active TenureUnit
	Values [3]float64
}

// Value returns the stored tenure for the active unit.
func (t *TenureSelection) Value() float64 {
	return t.Values[t.Active]
}

// SetValue stores a tenure value against the active unit.
func (t *TenureSelection) SetValue(v float64) {
	t.Values[t.Active] = v
}

// Cycle advances the active unit through the given cycle. When the unit
// being entered has no stored value it is seeded with that unit's default so
// the selection never lands on a degenerate zero tenure.
func (t *TenureSelection) Cycle(cycle []TenureUnit, defaults [3]float64) {
	idx := 0
	for i, u := range cycle {
		if u == t.Active {
			idx = i
			break
		}
	}
	next := cycle[(idx+1)%len(cycle)]
	if t.Values[next] == 0 {
		t.Values[next] = defaults[next]
	}
	t.Active = next
}

// CompoundingFrequency is the number of interest credits per year, selected
// by a cyclable pill on NSC and compound-interest calculators.
type CompoundingFrequency int

const (
	CompoundYearly CompoundingFrequency = iota
	CompoundHalfYearly
	CompoundQuarterly
)

func (f CompoundingFrequency) String() string {
	switch f {
	case CompoundYearly:
		return "Yearly"
	case CompoundHalfYearly:
		return "Half-Yearly"
	case CompoundQuarterly:
		return "Quarterly"
	default:
		return "Unknown"
	}
}

// PeriodsPerYear returns how many times interest compounds in a year.
func (f CompoundingFrequency) PeriodsPerYear() int {
	switch f {
	case CompoundHalfYearly:
		return 2
	case CompoundQuarterly:
		return 4
	default:
		return 1
	}
}

var (
	NSCFrequencyCycle = []CompoundingFrequency{CompoundYearly, CompoundHalfYearly}
	CIFrequencyCycle  = []CompoundingFrequency{CompoundYearly, CompoundHalfYearly, CompoundQuarterly}
)

// NextFrequency advances a frequency pill through its cycle.
func NextFrequency(cycle []CompoundingFrequency, current CompoundingFrequency) CompoundingFrequency {
	for i, f := range cycle {
		if f == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}
