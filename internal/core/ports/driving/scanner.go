package driving

import (
	"context"

	"github.com/Nubicola/fortuna/internal/core/domain"
)

// Scanner walks a time range looking for Part of Fortune conjunctions.
type Scanner interface {
	// Scan advances from req.Start to req.End inclusive in one-minute
	// steps, calling emit for every conjunction in chronological order.
	// It returns the number of steps performed. Any ephemeris or house
	// failure aborts the whole scan; there is no per-step recovery.
	Scan(ctx context.Context, req domain.ScanRequest, emit func(domain.Conjunction)) (int, error)
}
