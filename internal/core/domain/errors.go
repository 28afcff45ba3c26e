package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCuspCount indicates house cusp data of unexpected length.
	// Valid backends supply either 12 cusps or 13 with an unused
	// placeholder at index 0; anything else is a contract violation.
	ErrCuspCount = errors.New("unexpected house cusp count")

	// ErrEphemeris indicates the ephemeris backend could not resolve a
	// body or time. A single failed lookup invalidates the whole scan,
	// so callers treat this as fatal.
	ErrEphemeris = errors.New("ephemeris lookup failed")

	// ErrHouseNotFound indicates a longitude matched none of the twelve
	// cusp intervals. Well-formed cusps partition the full circle, so
	// this signals corrupt cusp data, never a valid domain outcome.
	ErrHouseNotFound = errors.New("no house matches longitude")

	// ErrUnknownBody indicates a body outside the tracked set.
	ErrUnknownBody = errors.New("unknown body")

	// ErrUnsupportedHouseSystem indicates an unrecognised house-system code.
	ErrUnsupportedHouseSystem = errors.New("unsupported house system")
)
