// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/timewalk/compare"
	"github.com/katalvlaran/timewalk/field"
	"github.com/katalvlaran/timewalk/fit"
	"github.com/katalvlaran/timewalk/reference"
	"github.com/katalvlaran/timewalk/spectrum"
	"github.com/katalvlaran/timewalk/walk"
	"go.uber.org/zap"
)

// Run simulates cfg and analyzes the resulting histogram.
//
// The returned error is non-nil only for configuration errors and
// cancellation; analysis failures are recorded in the Report.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	r := runner{log: zap.NewNop(), progress: cfg.Walk.Progress}
	for _, o := range opts {
		o(&r)
	}
	log := r.log

	// Stage 1: field.
	var fopts []field.Option
	if cfg.NormalizeField {
		fopts = append(fopts, field.WithNormalize())
	}
	f, err := field.Linear(cfg.Length, cfg.Gradient, fopts...)
	if err != nil {
		return nil, fmt.Errorf("Run: field: %w", err)
	}

	// Stage 2: ensemble.
	wopts := cfg.Walk
	wopts.Progress = r.progress
	ens, err := walk.NewEnsemble(f, cfg.Iterations, wopts)
	if err != nil {
		return nil, fmt.Errorf("Run: ensemble: %w", err)
	}
	log.Info("simulation started",
		zap.Int("length", cfg.Length),
		zap.Int("iterations", cfg.Iterations),
		zap.Float64("gradient", cfg.Gradient),
		zap.Stringer("mode", wopts.Mode),
		zap.Int("start", ens.Start()),
		zap.Int("workers", wopts.Workers))

	began := time.Now()
	hist := ens.NewHistogram()
	stats, err := ens.Run(ctx, hist)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	log.Info("simulation finished",
		zap.Int("particles", stats.Particles),
		zap.Int64("steps", stats.Steps),
		zap.Int64("counted", stats.Counted),
		zap.Int64("skipped", stats.Skipped),
		zap.Int("truncated", stats.Truncated),
		zap.Duration("elapsed", time.Since(began)))

	rep := &Report{
		Config:    cfg,
		Stats:     stats,
		Field:     f.Values(),
		Histogram: hist.Values(),
	}
	rep.Config.Walk.Progress = nil
	rep.Config.Walk.Rand = nil

	// Stage 3 and 4: normalized curve and references. The axis and both
	// references depend only on the length, which field.Linear accepted.
	rep.Axis, _ = reference.Axis(cfg.Length)
	rep.Brachistochrone, _ = reference.Brachistochrone(cfg.Length)
	rep.InverseQuadratic, _ = reference.InverseQuadratic(cfg.Length)
	rep.Normalized, rep.NormalizeErr = hist.Normalized()
	if rep.NormalizeErr != nil {
		log.Warn("normalization skipped", zap.Error(rep.NormalizeErr))
	}

	if rep.NormalizeErr == nil {
		analyzeFit(rep, log)
		analyzeComparisons(rep, log)
	}
	analyzeSpectrum(rep, log)
	return rep, nil
}

// analyzeFit runs Stage 5.
func analyzeFit(rep *Report, log *zap.Logger) {
	res, err := fit.Curve(rep.Axis, rep.Normalized, rep.Config.Fit)
	if err != nil {
		rep.FitErr = err
		log.Warn("curve fit abandoned", zap.Error(err))
		return
	}
	rep.Fit = res
	log.Info("curve fit",
		zap.Float64("a", res.A),
		zap.Float64("b", res.B),
		zap.Float64("c", res.C),
		zap.Int("evaluations", res.Evaluations))

	ll, err := fit.CrossCheck(rep.Axis, rep.Normalized, res, rep.Config.Fit)
	if err != nil {
		log.Warn("log-log cross-check skipped", zap.Error(err))
		return
	}
	rep.CrossCheck = &ll
	log.Info("log-log cross-check", zap.Float64("slope", ll.Slope), zap.Int("points", ll.Points))
}

// analyzeSpectrum runs Stage 6.
func analyzeSpectrum(rep *Report, log *zap.Logger) {
	ps, err := spectrum.Compute(rep.Histogram)
	if err != nil {
		rep.SpectralErr = err
		log.Warn("power spectrum skipped", zap.Error(err))
		return
	}
	rep.Spectrum = ps
	sl, err := spectrum.FitSlope(ps, rep.Config.Slope)
	if err != nil {
		rep.SpectralErr = err
		log.Warn("spectral slope undefined", zap.Error(err))
		return
	}
	rep.Slope = &sl
	log.Info("spectral slope", zap.Float64("exponent", sl.Exponent), zap.Int("points", sl.Points))
}

// analyzeComparisons runs Stage 7.
func analyzeComparisons(rep *Report, log *zap.Logger) {
	refs := []struct {
		name  string
		curve []float64
	}{
		{RefBrachistochrone, rep.Brachistochrone},
		{RefInverseQuadratic, rep.InverseQuadratic},
	}
	rep.Comparisons = make(map[string]compare.Metrics, len(refs))
	for _, ref := range refs {
		m, err := compare.Against(rep.Normalized, ref.curve, rep.Config.Compare)
		if err != nil {
			rep.CompareErr = fmt.Errorf("%s: %w", ref.name, err)
			log.Warn("comparison skipped", zap.String("reference", ref.name), zap.Error(err))
			continue
		}
		rep.Comparisons[ref.name] = m
		log.Debug("comparison",
			zap.String("reference", ref.name),
			zap.Float64("rmse", m.RMSE),
			zap.Float64("dtw", m.DTW))
	}
}
