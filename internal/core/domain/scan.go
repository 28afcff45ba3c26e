package domain

import "time"

// Orb thresholds in degrees.
const (
	// WideOrb is the maximum separation for a conjunction candidate.
	WideOrb = 6.0

	// ExactOrb is the tighter threshold applied in exact mode.
	ExactOrb = 1.0
)

// OrbMode selects which conjunction candidates are reported.
type OrbMode string

// Available modes.
const (
	// OrbWide reports every candidate within WideOrb.
	OrbWide OrbMode = "wide"

	// OrbExact reports only candidates within ExactOrb.
	OrbExact OrbMode = "exact"
)

// IsValid returns true if the mode is recognised.
func (m OrbMode) IsValid() bool {
	return m == OrbWide || m == OrbExact
}

// MaxOrb returns the reporting threshold for the mode.
func (m OrbMode) MaxOrb() float64 {
	if m == OrbExact {
		return ExactOrb
	}
	return WideOrb
}

// String returns the string representation.
func (m OrbMode) String() string {
	return string(m)
}

// Observer is a geographic location. Latitude is signed, North positive;
// longitude is signed, East positive.
type Observer struct {
	Latitude  float64
	Longitude float64
}

// ScanRequest describes one conjunction scan. Both endpoints are inclusive
// and all times are UTC; the cursor advances in fixed one-minute steps.
type ScanRequest struct {
	Start    time.Time
	End      time.Time
	Observer Observer
	Mode     OrbMode
}

// Conjunction is one reported meeting of the Part of Fortune and a tracked
// body: same zodiac sign, separation within orb. Conjunctions are emitted
// the moment they are found and never stored.
type Conjunction struct {
	At           time.Time
	Sun          BodyPosition
	Moon         BodyPosition
	Fortune      float64
	FortuneHouse int
	Body         BodyPosition
	Orb          float64
}
