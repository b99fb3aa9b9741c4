// Package acoustics computes the resonance frequencies of a cylindrical
// pipe from its geometry, end configuration, air temperature, and an
// optional set of side holes.
//
// The model is the classic closed-form air-column approximation:
//
//   - open pipe:   f0 = v / (2 L)
//   - closed pipe: f0 = v / (4 L)
//
// where v is the speed of sound and L the (effective) pipe length.
// Side holes shorten the effective length to the distance from the
// mouth to the first open hole plus an end correction.
//
// Every function is pure and stateless: no I/O, no shared state, safe
// for concurrent use. Invalid input is reported through sentinel
// errors, never clamped or substituted.
package acoustics
