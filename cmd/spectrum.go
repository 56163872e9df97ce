// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/timewalk/internal/config"
	"github.com/katalvlaran/timewalk/internal/observability"
	"github.com/katalvlaran/timewalk/render"
	"github.com/katalvlaran/timewalk/spectrum"
	"github.com/katalvlaran/timewalk/synthetic"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var spectrumFlags = map[string]string{
	"low-cut":  "analysis.low_cut",
	"high-cut": "analysis.high_cut",
	"out":      "output.dir",
	"plots":    "output.plots",
}

func newSpectrumCmd(v *viper.Viper) *cobra.Command {
	var (
		length     int
		transition int
		residual   float64
	)
	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Power spectrum and log-log slope of a synthetic occupancy profile",
		Long: `spectrum builds a synthetic particle-count profile that decays as 1/r^3 below
the transition distance and as 1/r^2 above it, then reports its power spectrum
slope over the configured band.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(v, cmd, spectrumFlags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				return err
			}
			if length <= 0 {
				return fmt.Errorf("--synthetic must be positive, got %d", length)
			}
			if transition < 1 {
				return fmt.Errorf("--transition must be positive, got %d", transition)
			}
			if residual < 0 {
				return fmt.Errorf("--residual must be >= 0, got %g", residual)
			}
			profile, err := synthetic.Transition(length,
				synthetic.WithTransition(transition),
				synthetic.WithResidual(residual))
			if err != nil {
				return err
			}
			return runSpectrum(cmd.OutOrStdout(), cfg, profile)
		},
	}

	f := cmd.Flags()
	f.IntVar(&length, "synthetic", 10000, "length of the synthetic profile")
	f.IntVar(&transition, "transition", synthetic.DefaultTransition, "transition distance T")
	f.Float64Var(&residual, "residual", synthetic.DefaultResidual, "flat residual added before normalization")
	f.Float64("low-cut", spectrum.DefaultLowCut, "slope band lower frequency")
	f.Float64("high-cut", spectrum.DefaultHighCut, "slope band upper frequency")
	f.StringP("out", "o", "out", "output directory")
	f.Bool("plots", true, "write the spectrum chart")
	return cmd
}

func runSpectrum(w io.Writer, cfg *config.Config, profile []float64) error {
	logger := observability.GetLogger()
	band := spectrum.SlopeOptions{Low: cfg.Analysis.LowCut, High: cfg.Analysis.HighCut}

	ps, err := spectrum.Compute(profile)
	if err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	peak, _ := ps.Peak()
	fmt.Fprintf(w, "bins: %d  peak frequency: %.6f\n", ps.Len(), peak)

	slope, err := spectrum.FitSlope(ps, band)
	var slopePtr *spectrum.Slope
	if err != nil {
		logger.Warn("spectral slope undefined", zap.Error(err))
		fmt.Fprintf(w, "spectral slope: undefined (%v)\n", err)
	} else {
		slopePtr = &slope
		fmt.Fprintf(w, "spectral slope: %.4f over %d bins\n", slope.Exponent, slope.Points)
	}

	if !cfg.Output.Plots {
		return nil
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(cfg.Output.Dir, spectrumFile)
	if err := writeFile(path, func(out io.Writer) error {
		return render.Spectrum(out, ps, slopePtr, band)
	}); err != nil {
		return err
	}
	logger.Info("spectrum chart written", zap.String("path", path))
	return nil
}
