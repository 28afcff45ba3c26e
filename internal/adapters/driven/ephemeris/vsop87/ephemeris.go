package vsop87

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/elliptic"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/Nubicola/fortuna/internal/core/domain"
	"github.com/Nubicola/fortuna/internal/core/ports/driven"
)

// Ensure Ephemeris implements the interface.
var _ driven.Ephemeris = (*Ephemeris)(nil)

// vsopIndex maps tracked planets to their VSOP87 series index.
var vsopIndex = map[domain.Body]int{
	domain.Mercury: pp.Mercury,
	domain.Venus:   pp.Venus,
	domain.Mars:    pp.Mars,
	domain.Jupiter: pp.Jupiter,
	domain.Saturn:  pp.Saturn,
}

// Ephemeris computes apparent ecliptic longitudes from VSOP87 series files.
// All series are loaded once at construction; lookups afterwards are pure
// computation with no I/O.
type Ephemeris struct {
	earth   *pp.V87Planet
	planets map[domain.Body]*pp.V87Planet
}

// New loads the VSOP87 series from dataDir. Earth is always required:
// geocentric positions of the Sun and planets are computed against it.
// A missing or unreadable series file is an ephemeris configuration
// error and fails construction.
func New(dataDir string) (*Ephemeris, error) {
	earth, err := pp.LoadPlanetPath(pp.Earth, dataDir)
	if err != nil {
		return nil, fmt.Errorf("%w: Earth series in %q: %v", domain.ErrEphemeris, dataDir, err)
	}

	planets := make(map[domain.Body]*pp.V87Planet, len(vsopIndex))
	for body, idx := range vsopIndex {
		p, err := pp.LoadPlanetPath(idx, dataDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %s series in %q: %v", domain.ErrEphemeris, body, dataDir, err)
		}
		planets[body] = p
	}

	return &Ephemeris{earth: earth, planets: planets}, nil
}

// Longitude returns the apparent geocentric ecliptic longitude of a body
// in degrees [0, 360) at the given moment.
func (e *Ephemeris) Longitude(t time.Time, body domain.Body) (float64, error) {
	jde := julian.TimeToJD(t.UTC())

	switch body {
	case domain.Sun:
		lon, _, _ := solar.ApparentVSOP87(e.earth, jde)
		return domain.Normalize360(lon.Deg()), nil

	case domain.Moon:
		// moonposition yields the longitude for the mean equinox of date;
		// add nutation in longitude for the apparent position.
		lon, _, _ := moonposition.Position(jde)
		dPsi, _ := nutation.Nutation(jde)
		return domain.Normalize360(lon.Deg() + dPsi.Deg()), nil

	default:
		p, ok := e.planets[body]
		if !ok {
			return 0, fmt.Errorf("%w: %s", domain.ErrUnknownBody, body)
		}
		// elliptic.Position gives apparent equatorial coordinates; rotate
		// them back to the ecliptic of date using the true obliquity.
		ra, dec := elliptic.Position(p, e.earth, jde)
		_, dEps := nutation.Nutation(jde)
		obl := coord.NewObliquity(nutation.MeanObliquity(jde) + dEps)
		ecl := new(coord.Ecliptic).EqToEcl(&coord.Equatorial{RA: ra, Dec: dec}, obl)
		return domain.Normalize360(ecl.Lon.Deg()), nil
	}
}
