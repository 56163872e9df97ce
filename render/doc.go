// Package render draws the two figures of a run as PNG charts.
//
//   - Occupancy: the normalized occupancy against the normalized axis, overlaid
//     with the brachistochrone and inverse-quadratic reference curves and, when
//     available, the fitted power law.
//   - Spectrum: log10(power) against log10(frequency) with the fitted slope line
//     drawn over the fitting band.
//
// Charts are written to any io.Writer; the package never touches the filesystem.
package render
