// Package domain defines the core business entities for Fortuna.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Body: One of the seven tracked celestial bodies
//   - BodyPosition: A body's ecliptic longitude at one moment
//   - HouseCusps: The twelve house boundaries plus the chart angles
//   - Conjunction: A reported meeting of the Part of Fortune and a body
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
