// Package houses implements the HouseCalculator port.
//
// The single supported division method is code 'W', equal houses from the
// Ascendant: twelve 30-degree cusps starting at the Ascendant longitude.
// The Ascendant itself is derived from the local apparent sidereal time,
// the true obliquity of the ecliptic, and the observer latitude.
package houses
