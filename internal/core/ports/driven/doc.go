// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Ephemeris: Ecliptic longitudes from a precision ephemeris data source
//   - HouseCalculator: House cusps and Ascendant for a moment and observer
//   - ConfigStore: Application configuration
//
// All three are constructed once at process start with explicit
// configuration; nothing here is a process-wide implicit setting.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
