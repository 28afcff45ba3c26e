package houses

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"

	"github.com/Nubicola/fortuna/internal/core/domain"
	"github.com/Nubicola/fortuna/internal/core/ports/driven"
)

// Ensure EqualHouse implements the interface.
var _ driven.HouseCalculator = (*EqualHouse)(nil)

// SystemEqual is the house-system code for equal houses from the Ascendant.
const SystemEqual byte = 'W'

// EqualHouse computes equal house cusps from the Ascendant. Cusps depend
// on sidereal time, so they must be recomputed for every moment.
type EqualHouse struct{}

// New creates a house calculator for the given single-character system
// code. Only SystemEqual is supported; anything else is a configuration
// error.
func New(system byte) (*EqualHouse, error) {
	if system != SystemEqual {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedHouseSystem, string(system))
	}
	return &EqualHouse{}, nil
}

// Cusps returns the twelve cusp longitudes plus the Ascendant and MC for
// the given moment and observer. Cusp n is Ascendant + 30(n-1) degrees.
func (h *EqualHouse) Cusps(t time.Time, obs domain.Observer) (domain.HouseCusps, error) {
	jd := julian.TimeToJD(t.UTC())

	// Greenwich apparent sidereal time in degrees (240 seconds of time
	// per degree), shifted east to the observer's meridian.
	gst := sidereal.Apparent(jd).Sec() / 240
	lst := domain.Normalize360(gst + obs.Longitude)

	_, dEps := nutation.Nutation(jd)
	eps := (nutation.MeanObliquity(jd) + dEps).Rad()

	asc := ascendant(lst, eps, obs.Latitude)
	cusps := make([]float64, 12)
	for i := range cusps {
		cusps[i] = domain.Normalize360(asc + float64(i)*30)
	}

	return domain.NewHouseCusps(cusps, asc, midheaven(lst, eps))
}

// ascendant returns the ecliptic longitude rising on the eastern horizon
// for a local sidereal time (degrees), obliquity (radians) and geographic
// latitude (degrees).
func ascendant(lstDeg, epsRad, latDeg float64) float64 {
	theta := lstDeg * math.Pi / 180
	phi := latDeg * math.Pi / 180

	y := math.Cos(theta)
	x := -(math.Sin(theta)*math.Cos(epsRad) + math.Tan(phi)*math.Sin(epsRad))
	return domain.Normalize360(math.Atan2(y, x) * 180 / math.Pi)
}

// midheaven returns the ecliptic longitude culminating on the meridian.
// The equal house system ignores it beyond diagnostics.
func midheaven(lstDeg, epsRad float64) float64 {
	theta := lstDeg * math.Pi / 180
	return domain.Normalize360(math.Atan2(math.Sin(theta), math.Cos(theta)*math.Cos(epsRad)) * 180 / math.Pi)
}
