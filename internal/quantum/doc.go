// Package quantum provides the numeric kernels behind the tutorial
// simulations.
//
// Every kernel is a pure function from resolved parameters to a fixed-size
// sample array:
//
//   - [DoubleSlit]: interference intensity across a detection screen
//   - [Tunneling]: rectangular-barrier transmission probability curve
//   - [Hydrogen]: radial probability density of a hydrogen orbital
//
// Kernels hold no state and perform no I/O, so identical inputs always yield
// identical output and independent calls may run concurrently without
// coordination.
package quantum
