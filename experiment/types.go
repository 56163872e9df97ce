// SPDX-License-Identifier: MIT

package experiment

import (
	"errors"

	"github.com/katalvlaran/timewalk/compare"
	"github.com/katalvlaran/timewalk/fit"
	"github.com/katalvlaran/timewalk/spectrum"
	"github.com/katalvlaran/timewalk/walk"
	"go.uber.org/zap"
)

// ErrNilReport indicates WriteReport was handed nothing to write.
var ErrNilReport = errors.New("experiment: nil report")

// Reference curve names used as keys of Report.Comparisons.
const (
	RefBrachistochrone  = "brachistochrone"
	RefInverseQuadratic = "inverse_quadratic"
)

// Config is everything a run needs.
type Config struct {
	Length         int
	Iterations     int
	Gradient       float64
	NormalizeField bool

	Walk    walk.Options
	Fit     fit.Options
	Slope   spectrum.SlopeOptions
	Compare compare.Options
}

// DefaultConfig mirrors the reference run: 80 positions, 10000 particles, gradient 0.5.
func DefaultConfig() Config {
	w := walk.DefaultOptions()
	w.Seed = 1
	return Config{
		Length:     80,
		Iterations: 10000,
		Gradient:   0.5,
		Walk:       w,
		Fit:        fit.DefaultOptions(),
		Slope:      spectrum.DefaultSlopeOptions(),
		Compare:    compare.DefaultOptions(),
	}
}

// Report collects every artifact of a run. Slices are owned by the Report.
type Report struct {
	Config Config
	Stats  walk.Stats

	Field      []float64
	Axis       []float64
	Histogram  []float64
	Normalized []float64

	Brachistochrone  []float64
	InverseQuadratic []float64

	NormalizeErr error

	Fit        *fit.Result
	CrossCheck *fit.LogLog
	FitErr     error

	Spectrum    *spectrum.PowerSpectrum
	Slope       *spectrum.Slope
	SpectralErr error

	Comparisons map[string]compare.Metrics
	CompareErr  error
}

// Option customizes Run.
type Option func(*runner)

type runner struct {
	log      *zap.Logger
	progress walk.ProgressFunc
}

// WithLogger routes stage logs to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithProgress installs a progress reporter on the ensemble, overriding Config.Walk.Progress.
func WithProgress(fn walk.ProgressFunc) Option {
	return func(r *runner) { r.progress = fn }
}
