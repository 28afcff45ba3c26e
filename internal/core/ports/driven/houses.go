package driven

import (
	"time"

	"github.com/Nubicola/fortuna/internal/core/domain"
)

// HouseCalculator computes house cusps for a moment and observer location.
// Cusp positions depend on sidereal time, which changes continuously, so
// callers must recompute them for every moment rather than cache.
type HouseCalculator interface {
	// Cusps returns the twelve cusp longitudes plus the chart angles
	// for the given moment (UTC) and observer.
	Cusps(t time.Time, obs domain.Observer) (domain.HouseCusps, error)
}
