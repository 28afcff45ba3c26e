// Package vsop87 implements the Ephemeris port on top of the VSOP87
// planetary theory via github.com/soniakeys/meeus.
//
// The adapter loads the VSOP87 series files for Earth and the five
// tracked planets from a directory given at construction time; the
// files are the process's single external data dependency and are
// read-only for its lifetime. Lunar positions come from the ELP theory
// bundled with the library and need no data files.
package vsop87
