// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"io"

	"github.com/katalvlaran/timewalk/compare"
	"gopkg.in/yaml.v3"
)

// summary is the YAML shape of a Report; bulky series are left out.
type summary struct {
	Simulation simulationSummary          `yaml:"simulation"`
	Stats      statsSummary               `yaml:"stats"`
	Fit        *fitSummary                `yaml:"fit,omitempty"`
	FitError   string                     `yaml:"fit_error,omitempty"`
	Spectrum   *spectrumSummary           `yaml:"spectrum,omitempty"`
	SpecError  string                     `yaml:"spectrum_error,omitempty"`
	Compare    map[string]compare.Metrics `yaml:"comparisons,omitempty"`
	CompareErr string                     `yaml:"comparison_error,omitempty"`
	NormError  string                     `yaml:"normalize_error,omitempty"`
}

type simulationSummary struct {
	Length         int     `yaml:"length"`
	Iterations     int     `yaml:"iterations"`
	Gradient       float64 `yaml:"gradient"`
	NormalizeField bool    `yaml:"normalize_field"`
	Mode           string  `yaml:"mode"`
	Lambda         float64 `yaml:"lambda"`
	Increment      float64 `yaml:"increment"`
	Seed           int64   `yaml:"seed"`
	Workers        int     `yaml:"workers"`
	MaxSteps       int64   `yaml:"max_steps"`
}

type statsSummary struct {
	Particles int     `yaml:"particles"`
	Steps     int64   `yaml:"steps"`
	Counted   int64   `yaml:"counted"`
	Skipped   int64   `yaml:"skipped"`
	Truncated int     `yaml:"truncated"`
	MaxWalk   int64   `yaml:"max_walk"`
	Sum       float64 `yaml:"histogram_sum"`
	Peak      int     `yaml:"histogram_peak"`
}

type fitSummary struct {
	A            float64   `yaml:"a"`
	B            float64   `yaml:"b"`
	C            float64   `yaml:"c"`
	Offset       bool      `yaml:"offset"`
	StdErr       []float64 `yaml:"stderr,omitempty,flow"`
	Residual     float64   `yaml:"residual"`
	Evaluations  int       `yaml:"evaluations"`
	LogLogSlope  *float64  `yaml:"loglog_slope,omitempty"`
	LogLogPoints int       `yaml:"loglog_points,omitempty"`
}

type spectrumSummary struct {
	Bins          int      `yaml:"bins"`
	PeakFrequency float64  `yaml:"peak_frequency"`
	Exponent      *float64 `yaml:"exponent,omitempty"`
	Points        int      `yaml:"points,omitempty"`
	LowCut        float64  `yaml:"low_cut"`
	HighCut       float64  `yaml:"high_cut"`
}

// WriteReport writes a YAML summary of rep to w.
func WriteReport(w io.Writer, rep *Report) error {
	if rep == nil {
		return fmt.Errorf("WriteReport: %w", ErrNilReport)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summarize(rep)); err != nil {
		return fmt.Errorf("WriteReport: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteReport: %w", err)
	}
	return nil
}

func summarize(rep *Report) summary {
	cfg := rep.Config
	s := summary{
		Simulation: simulationSummary{
			Length:         cfg.Length,
			Iterations:     cfg.Iterations,
			Gradient:       cfg.Gradient,
			NormalizeField: cfg.NormalizeField,
			Mode:           cfg.Walk.Mode.String(),
			Lambda:         cfg.Walk.Lambda,
			Increment:      cfg.Walk.Increment,
			Seed:           cfg.Walk.Seed,
			Workers:        cfg.Walk.Workers,
			MaxSteps:       cfg.Walk.MaxSteps,
		},
		Stats: statsSummary{
			Particles: rep.Stats.Particles,
			Steps:     rep.Stats.Steps,
			Counted:   rep.Stats.Counted,
			Skipped:   rep.Stats.Skipped,
			Truncated: rep.Stats.Truncated,
			MaxWalk:   rep.Stats.MaxWalk,
			Peak:      argmax(rep.Histogram),
		},
		Compare: rep.Comparisons,
	}
	for _, v := range rep.Histogram {
		s.Stats.Sum += v
	}

	if rep.Fit != nil {
		fs := &fitSummary{
			A:           rep.Fit.A,
			B:           rep.Fit.B,
			C:           rep.Fit.C,
			Offset:      rep.Fit.Offset,
			Residual:    rep.Fit.Residual,
			Evaluations: rep.Fit.Evaluations,
		}
		if rep.Fit.Covariance != nil {
			for i := range rep.Fit.Params {
				fs.StdErr = append(fs.StdErr, rep.Fit.StdErr(i))
			}
		}
		if rep.CrossCheck != nil {
			slope := rep.CrossCheck.Slope
			fs.LogLogSlope = &slope
			fs.LogLogPoints = rep.CrossCheck.Points
		}
		s.Fit = fs
	}
	if rep.Spectrum != nil {
		peak, _ := rep.Spectrum.Peak()
		ss := &spectrumSummary{
			Bins:          rep.Spectrum.Len(),
			PeakFrequency: peak,
			LowCut:        cfg.Slope.Low,
			HighCut:       cfg.Slope.High,
		}
		if rep.Slope != nil {
			exp := rep.Slope.Exponent
			ss.Exponent = &exp
			ss.Points = rep.Slope.Points
		}
		s.Spectrum = ss
	}
	s.FitError = errString(rep.FitErr)
	s.SpecError = errString(rep.SpectralErr)
	s.CompareErr = errString(rep.CompareErr)
	s.NormError = errString(rep.NormalizeErr)
	return s
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func argmax(xs []float64) int {
	best := -1
	for i, v := range xs {
		if best < 0 || v > xs[best] {
			best = i
		}
	}
	return best
}
