// Package experiment wires the simulation and analysis stages into one run.
//
// 🚀 Stages
//
//  1. field.Linear builds the time-dilation field       (fatal on error)
//  2. walk.Ensemble fills the occupancy histogram        (fatal on error)
//  3. Histogram.Normalized scales it to a maximum of 1
//  4. reference curves on the normalized axis
//  5. fit.Curve + fit.CrossCheck                         (non-fatal)
//  6. spectrum.Compute + spectrum.FitSlope               (non-fatal)
//  7. compare.Against for each reference curve           (non-fatal)
//
// Non-fatal failures are stored in the Report (FitErr, SpectralErr, ...) and
// logged at Warn; the histogram and reference curves stay valid. WriteReport
// emits a YAML summary of a Report.
package experiment
