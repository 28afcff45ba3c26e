package domain

import "math"

// Normalize360 wraps any angle in degrees into [0, 360).
// It is idempotent: normalizing an already-normalized value is a no-op.
func Normalize360(degrees float64) float64 {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Separation returns the shortest angular arc between two longitudes,
// in degrees. The result is symmetric in its arguments and always in [0, 180].
func Separation(a, b float64) float64 {
	d := math.Abs(Normalize360(a) - Normalize360(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// WithinSign returns the degree of a longitude within its zodiac sign,
// i.e. the longitude modulo 30.
func WithinSign(longitude float64) float64 {
	return math.Mod(Normalize360(longitude), 30)
}
