package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Nubicola/fortuna/internal/core/domain"
	"github.com/Nubicola/fortuna/internal/core/ports/driven"
	"github.com/Nubicola/fortuna/internal/core/ports/driving"
	"github.com/Nubicola/fortuna/internal/logger"
)

// Ensure ScanService implements the interface.
var _ driving.Scanner = (*ScanService)(nil)

// scanStep is the fixed scan granularity.
const scanStep = time.Minute

// ScanService walks a time range at one-minute resolution, deriving the
// Part of Fortune at every step and reporting its conjunctions with the
// tracked bodies. The scan is single-threaded and fully synchronous; every
// step's positions are transient locals, recomputed rather than cached.
type ScanService struct {
	ephemeris driven.Ephemeris
	houses    driven.HouseCalculator
}

// NewScanService creates a new scan service.
func NewScanService(ephemeris driven.Ephemeris, houses driven.HouseCalculator) *ScanService {
	return &ScanService{
		ephemeris: ephemeris,
		houses:    houses,
	}
}

// Scan advances from req.Start to req.End inclusive, one minute per step,
// and calls emit for every qualifying conjunction in chronological order.
// A body qualifies when it shares the Part of Fortune's zodiac sign and
// their shortest-arc separation is within the wide orb; exact mode reports
// only candidates within the exact orb. Returns the number of steps walked.
//
// Any ephemeris or house failure aborts the whole scan: a single bad
// lookup invalidates trust in everything after it.
func (s *ScanService) Scan(
	ctx context.Context, req domain.ScanRequest, emit func(domain.Conjunction),
) (int, error) {
	logger.Section("Conjunction Scan")
	logger.Debug("Range: %s .. %s (mode %s)",
		req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339), req.Mode)
	logger.Debug("Observer: lat %.4f lon %.4f", req.Observer.Latitude, req.Observer.Longitude)

	steps := 0
	for cursor := req.Start; !cursor.After(req.End); cursor = cursor.Add(scanStep) {
		select {
		case <-ctx.Done():
			return steps, ctx.Err()
		default:
		}

		if err := s.step(cursor, req, emit); err != nil {
			return steps, err
		}
		steps++
	}

	logger.Debug("Scan complete: %d steps", steps)
	return steps, nil
}

// step computes one moment: all body positions, the cusps, the Part of
// Fortune and its house, then emits qualifying conjunctions in the fixed
// body order.
func (s *ScanService) step(cursor time.Time, req domain.ScanRequest, emit func(domain.Conjunction)) error {
	bodies := domain.Bodies()
	positions := make([]domain.BodyPosition, 0, len(bodies))
	for _, b := range bodies {
		lon, err := s.ephemeris.Longitude(cursor, b)
		if err != nil {
			return fmt.Errorf("position of %s at %s: %w", b, cursor.Format(time.RFC3339), err)
		}
		positions = append(positions, domain.BodyPosition{Body: b, Name: b.String(), Longitude: lon})
	}

	cusps, err := s.houses.Cusps(cursor, req.Observer)
	if err != nil {
		return fmt.Errorf("house cusps at %s: %w", cursor.Format(time.RFC3339), err)
	}

	sun := positions[0]
	moon := positions[1]
	fortune := domain.FortuneLongitude(sun.Longitude, moon.Longitude, cusps.Ascendant)
	house, err := cusps.HouseOf(fortune)
	if err != nil {
		return fmt.Errorf("locating fortune point at %s: %w", cursor.Format(time.RFC3339), err)
	}

	fortuneSign := domain.SignOf(fortune)
	for _, p := range positions {
		orb := domain.Separation(fortune, p.Longitude)
		// Candidates need matching signs in addition to the orb, so a
		// pair straddling a sign boundary never qualifies.
		if orb > domain.WideOrb || domain.SignOf(p.Longitude) != fortuneSign {
			continue
		}
		if orb > req.Mode.MaxOrb() {
			continue
		}

		emit(domain.Conjunction{
			At:           cursor,
			Sun:          sun,
			Moon:         moon,
			Fortune:      fortune,
			FortuneHouse: house,
			Body:         p,
			Orb:          orb,
		})
	}
	return nil
}
