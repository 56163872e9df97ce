// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/timewalk/experiment"
	"github.com/katalvlaran/timewalk/internal/config"
	"github.com/katalvlaran/timewalk/internal/observability"
	"github.com/katalvlaran/timewalk/render"
	"github.com/katalvlaran/timewalk/walk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Artifact file names inside output.dir.
const (
	reportFile    = "report.yaml"
	occupancyFile = "occupancy.png"
	spectrumFile  = "spectrum.png"
)

const progressInterval = 2 * time.Second

// simulateFlags maps flag names to configuration keys.
var simulateFlags = map[string]string{
	"length":          "simulation.length",
	"iterations":      "simulation.iterations",
	"gradient":        "simulation.gradient",
	"lambda":          "simulation.lambda",
	"increment":       "simulation.increment",
	"mode":            "simulation.mode",
	"normalize-field": "simulation.normalize_field",
	"start":           "simulation.start",
	"seed":            "simulation.seed",
	"workers":         "simulation.workers",
	"max-steps":       "simulation.max_steps",
	"report-every":    "simulation.report_every",
	"fit-offset":      "analysis.fit_offset",
	"max-evaluations": "analysis.max_evaluations",
	"low-cut":         "analysis.low_cut",
	"high-cut":        "analysis.high_cut",
	"dtw-window":      "analysis.dtw_window",
	"out":             "output.dir",
	"plots":           "output.plots",
	"report":          "output.report",
}

func newSimulateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the random-walk ensemble and analyze its occupancy",
		Long: `simulate walks ITERATIONS particles through a linear time-dilation field,
normalizes the occupancy histogram, fits a power law, computes the power
spectrum and compares the result with the reference curves.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(v, cmd, simulateFlags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				return err
			}
			return runSimulate(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.Int("length", 80, "domain size (LENGTH)")
	f.Int("iterations", 10000, "number of particles (ITERATIONS)")
	f.Float64("gradient", 0.5, "field steepness (GRADIENT)")
	f.Float64("lambda", 0, "attraction coefficient, bidirectional mode only")
	f.Float64("increment", 1, "histogram increment per visit")
	f.String("mode", "unidirectional", "walk mode: unidirectional or bidirectional")
	f.Bool("normalize-field", false, "scale the field so its maximum is 1")
	f.String("start", config.StartAuto, `start position or "auto"`)
	f.Int64("seed", 1, "random seed")
	f.Int("workers", 1, "parallel walkers (1 = sequential)")
	f.Int64("max-steps", walk.DefaultMaxSteps, "per-walk step budget (0 = unlimited)")
	f.Int64("report-every", 0, "progress callback every N steps inside a walk")
	f.Bool("fit-offset", true, "fit b/x^a + c instead of b/x^a")
	f.Int("max-evaluations", 10000, "curve fit evaluation budget")
	f.Float64("low-cut", 4e-3, "spectral slope band lower frequency")
	f.Float64("high-cut", 0.4, "spectral slope band upper frequency")
	f.Int("dtw-window", -1, "Sakoe-Chiba window for DTW (-1 = none)")
	f.StringP("out", "o", "out", "output directory")
	f.Bool("plots", true, "write PNG charts")
	f.Bool("report", true, "write the YAML report")
	return cmd
}

// bindFlags binds every flag in keys to its configuration key. Subcommands
// share flag names, so binding happens once the command is chosen.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) error {
	for flag, key := range keys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}
	return nil
}

func runSimulate(cmd *cobra.Command, cfg *config.Config) error {
	logger := observability.GetLogger()
	exp, err := cfg.Experiment()
	if err != nil {
		return err
	}

	rep, err := experiment.Run(cmd.Context(), exp,
		experiment.WithLogger(logger),
		experiment.WithProgress(observability.ProgressLogger(logger, progressInterval)))
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	if err := writeArtifacts(cfg.Output, rep, logger); err != nil {
		return err
	}
	return printSummary(cmd.OutOrStdout(), rep)
}

// writeArtifacts stores the report and charts under out.Dir.
func writeArtifacts(out config.OutputConfig, rep *experiment.Report, logger *zap.Logger) error {
	if !out.Report && !out.Plots {
		return nil
	}
	if err := os.MkdirAll(out.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if out.Report {
		if err := writeFile(filepath.Join(out.Dir, reportFile), func(w io.Writer) error {
			return experiment.WriteReport(w, rep)
		}); err != nil {
			return err
		}
	}
	if !out.Plots {
		return nil
	}

	if rep.NormalizeErr == nil {
		data := render.OccupancyData{
			Axis:             rep.Axis,
			Normalized:       rep.Normalized,
			Brachistochrone:  rep.Brachistochrone,
			InverseQuadratic: rep.InverseQuadratic,
			Fit:              fittedCurve(rep),
		}
		err := writeFile(filepath.Join(out.Dir, occupancyFile), func(w io.Writer) error {
			return render.Occupancy(w, data)
		})
		if err != nil {
			logger.Warn("occupancy chart skipped", zap.Error(err))
		}
	}
	if rep.Spectrum != nil {
		err := writeFile(filepath.Join(out.Dir, spectrumFile), func(w io.Writer) error {
			return render.Spectrum(w, rep.Spectrum, rep.Slope, rep.Config.Slope)
		})
		if err != nil {
			logger.Warn("spectrum chart skipped", zap.Error(err))
		}
	}
	logger.Info("artifacts written", zap.String("dir", out.Dir))
	return nil
}

// fittedCurve evaluates the fit on the axis, nudging the first sample the way the fit did.
func fittedCurve(rep *experiment.Report) []float64 {
	if rep.Fit == nil {
		return nil
	}
	out := make([]float64, len(rep.Axis))
	for i, x := range rep.Axis {
		if i == 0 {
			x += rep.Config.Fit.Epsilon
		}
		out[i] = rep.Fit.Eval(x)
	}
	return out
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func printSummary(w io.Writer, rep *experiment.Report) error {
	fmt.Fprintf(w, "particles: %d  steps: %d  counted: %d  skipped: %d  truncated: %d\n",
		rep.Stats.Particles, rep.Stats.Steps, rep.Stats.Counted, rep.Stats.Skipped, rep.Stats.Truncated)
	switch {
	case rep.Fit != nil:
		fmt.Fprintf(w, "fit: a=%.4f b=%.4f c=%.4f\n", rep.Fit.A, rep.Fit.B, rep.Fit.C)
	case rep.FitErr != nil:
		fmt.Fprintf(w, "fit: abandoned (%v)\n", rep.FitErr)
	}
	switch {
	case rep.Slope != nil:
		fmt.Fprintf(w, "spectral slope: %.4f over %d bins\n", rep.Slope.Exponent, rep.Slope.Points)
	case rep.SpectralErr != nil:
		fmt.Fprintf(w, "spectral slope: undefined (%v)\n", rep.SpectralErr)
	}
	_, err := fmt.Fprintf(w, "peak occupancy at position %d\n", argmax(rep.Histogram))
	return err
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
