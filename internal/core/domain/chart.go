package domain

import "fmt"

// HouseCusps holds the twelve house cusp longitudes for one moment,
// plus the Ascendant and Midheaven. The equal-house system used here
// ignores every angle beyond the Ascendant; the MC is carried for
// diagnostics only.
type HouseCusps struct {
	Cusps     [12]float64
	Ascendant float64
	MC        float64
}

// NewHouseCusps builds HouseCusps from a backend cusp slice. Backends
// supply either 12 cusps, or 13 where index 0 is an unused placeholder
// (1-based array convention); the placeholder is dropped. Any other
// length returns ErrCuspCount. All longitudes are normalized to [0, 360).
func NewHouseCusps(cusps []float64, ascendant, mc float64) (HouseCusps, error) {
	switch len(cusps) {
	case 13:
		cusps = cusps[1:]
	case 12:
	default:
		return HouseCusps{}, fmt.Errorf("%w: expected 12 or 13, got %d", ErrCuspCount, len(cusps))
	}

	hc := HouseCusps{
		Ascendant: Normalize360(ascendant),
		MC:        Normalize360(mc),
	}
	for i, c := range cusps {
		hc.Cusps[i] = Normalize360(c)
	}
	return hc, nil
}

// HouseOf returns the 1-based house containing a longitude. Each of the
// twelve consecutive cusp pairs (the 12th wraps to the 1st) is a half-open
// angular interval: a non-wrapping pair matches when start <= lon < end,
// a pair crossing 0 degrees matches when lon >= start or lon < end.
// Houses are checked in cusp order and the first match wins.
//
// Well-formed cusps cover the full circle, so a miss returns
// ErrHouseNotFound rather than a sentinel house number.
func (hc HouseCusps) HouseOf(longitude float64) (int, error) {
	lon := Normalize360(longitude)

	for i := 0; i < 12; i++ {
		start := hc.Cusps[i]
		end := hc.Cusps[(i+1)%12]

		if start < end {
			if start <= lon && lon < end {
				return i + 1, nil
			}
		} else if lon >= start || lon < end {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %.4f", ErrHouseNotFound, longitude)
}
