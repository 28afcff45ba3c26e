package driven

import (
	"time"

	"github.com/Nubicola/fortuna/internal/core/domain"
)

// Ephemeris supplies ecliptic longitudes for the tracked bodies from a
// precision ephemeris data source. Implementations are constructed with
// their data-file path and are read-only for the process lifetime.
//
// A failed lookup must return an error wrapping domain.ErrEphemeris, never
// a degenerate longitude: one bad lookup invalidates the whole scan.
type Ephemeris interface {
	// Longitude returns the body's ecliptic longitude in degrees [0, 360)
	// at the given moment (interpreted in UTC).
	Longitude(t time.Time, body domain.Body) (float64, error)
}
