// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/timewalk/compare"
	"github.com/katalvlaran/timewalk/experiment"
	"github.com/katalvlaran/timewalk/fit"
	"github.com/katalvlaran/timewalk/spectrum"
	"github.com/katalvlaran/timewalk/walk"
	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// StartAuto is the simulation.start value that picks the mode's default start.
const StartAuto = "auto"

// Config is the root of the timewalk configuration tree.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation" yaml:"simulation"`
	Analysis   AnalysisConfig   `mapstructure:"analysis" yaml:"analysis"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
	Logger     LoggerConfig     `mapstructure:"logger" yaml:"logger"`
}

// SimulationConfig drives the field and the ensemble.
type SimulationConfig struct {
	Length         int     `mapstructure:"length" yaml:"length"`
	Iterations     int     `mapstructure:"iterations" yaml:"iterations"`
	Gradient       float64 `mapstructure:"gradient" yaml:"gradient"`
	Lambda         float64 `mapstructure:"lambda" yaml:"lambda"`
	Increment      float64 `mapstructure:"increment" yaml:"increment"`
	Mode           string  `mapstructure:"mode" yaml:"mode"`
	NormalizeField bool    `mapstructure:"normalize_field" yaml:"normalize_field"`
	Start          string  `mapstructure:"start" yaml:"start"`
	Seed           int64   `mapstructure:"seed" yaml:"seed"`
	Workers        int     `mapstructure:"workers" yaml:"workers"`
	MaxSteps       int64   `mapstructure:"max_steps" yaml:"max_steps"`
	ReportEvery    int64   `mapstructure:"report_every" yaml:"report_every"`
}

// AnalysisConfig tunes the fit, the spectral slope and the comparisons.
type AnalysisConfig struct {
	FitOffset      bool    `mapstructure:"fit_offset" yaml:"fit_offset"`
	MaxEvaluations int     `mapstructure:"max_evaluations" yaml:"max_evaluations"`
	LowCut         float64 `mapstructure:"low_cut" yaml:"low_cut"`
	HighCut        float64 `mapstructure:"high_cut" yaml:"high_cut"`
	DTWWindow      int     `mapstructure:"dtw_window" yaml:"dtw_window"`
}

// OutputConfig selects where artifacts go.
type OutputConfig struct {
	Dir    string `mapstructure:"dir" yaml:"dir"`
	Plots  bool   `mapstructure:"plots" yaml:"plots"`
	Report bool   `mapstructure:"report" yaml:"report"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color names for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// NewDefaultConfig returns the configuration built from SetDefaults alone.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are static; a failure here is a programming error.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults registers the default of every key.
func SetDefaults(v *viper.Viper) {
	// -- Simulation --
	v.SetDefault("simulation.length", 80)
	v.SetDefault("simulation.iterations", 10000)
	v.SetDefault("simulation.gradient", 0.5)
	v.SetDefault("simulation.lambda", 0.0)
	v.SetDefault("simulation.increment", 1.0)
	v.SetDefault("simulation.mode", "unidirectional")
	v.SetDefault("simulation.normalize_field", false)
	v.SetDefault("simulation.start", StartAuto)
	v.SetDefault("simulation.seed", 1)
	v.SetDefault("simulation.workers", 1)
	v.SetDefault("simulation.max_steps", walk.DefaultMaxSteps)
	v.SetDefault("simulation.report_every", 0)

	// -- Analysis --
	v.SetDefault("analysis.fit_offset", true)
	v.SetDefault("analysis.max_evaluations", fit.DefaultMaxEvaluations)
	v.SetDefault("analysis.low_cut", spectrum.DefaultLowCut)
	v.SetDefault("analysis.high_cut", spectrum.DefaultHighCut)
	v.SetDefault("analysis.dtw_window", compare.NoWindow)

	// -- Output --
	v.SetDefault("output.dir", "out")
	v.SetDefault("output.plots", true)
	v.SetDefault("output.report", true)

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "timewalk")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "magenta")
}

// NewConfigFromViper unmarshals and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.Length <= 0 {
		return invalid("simulation.length must be a positive integer")
	}
	if s.Iterations <= 0 {
		return invalid("simulation.iterations must be a positive integer")
	}
	if math.IsNaN(s.Gradient) || math.IsInf(s.Gradient, 0) {
		return invalid("simulation.gradient must be finite")
	}
	if math.IsNaN(s.Lambda) || math.IsInf(s.Lambda, 0) {
		return invalid("simulation.lambda must be finite")
	}
	if !(s.Increment > 0) {
		return invalid("simulation.increment must be positive")
	}
	if _, err := walk.ParseMode(s.Mode); err != nil {
		return invalid("simulation.mode must be unidirectional or bidirectional")
	}
	if _, _, err := c.start(); err != nil {
		return invalid("simulation.start must be %q or an integer", StartAuto)
	}
	if s.Workers < 1 {
		return invalid("simulation.workers must be at least 1")
	}
	if s.MaxSteps < 0 || s.ReportEvery < 0 {
		return invalid("simulation.max_steps and simulation.report_every must be >= 0")
	}

	a := c.Analysis
	if a.MaxEvaluations <= 0 {
		return invalid("analysis.max_evaluations must be a positive integer")
	}
	if a.LowCut < 0 || a.LowCut >= a.HighCut {
		return invalid("analysis.low_cut must be >= 0 and below analysis.high_cut")
	}
	if a.DTWWindow < compare.NoWindow {
		return invalid("analysis.dtw_window must be >= -1")
	}

	if c.Output.Dir == "" && (c.Output.Plots || c.Output.Report) {
		return invalid("output.dir is required when plots or report are enabled")
	}
	return nil
}

// Experiment translates the configuration into an experiment.Config.
func (c *Config) Experiment() (experiment.Config, error) {
	if err := c.Validate(); err != nil {
		return experiment.Config{}, err
	}
	s, a := c.Simulation, c.Analysis
	mode, _ := walk.ParseMode(s.Mode)
	start, _, _ := c.start()

	cfg := experiment.DefaultConfig()
	cfg.Length = s.Length
	cfg.Iterations = s.Iterations
	cfg.Gradient = s.Gradient
	cfg.NormalizeField = s.NormalizeField

	cfg.Walk.Mode = mode
	cfg.Walk.Lambda = s.Lambda
	cfg.Walk.Increment = s.Increment
	cfg.Walk.Start = start
	cfg.Walk.Seed = s.Seed
	cfg.Walk.Workers = s.Workers
	cfg.Walk.MaxSteps = s.MaxSteps
	cfg.Walk.ReportEvery = s.ReportEvery

	if a.FitOffset {
		cfg.Fit = fit.DefaultOptions()
	} else {
		cfg.Fit = fit.PowerLawOptions()
	}
	cfg.Fit.MaxEvaluations = a.MaxEvaluations
	cfg.Slope = spectrum.SlopeOptions{Low: a.LowCut, High: a.HighCut}
	cfg.Compare.Window = a.DTWWindow
	return cfg, nil
}

// start resolves simulation.start; auto reports true.
func (c *Config) start() (int, bool, error) {
	raw := strings.TrimSpace(c.Simulation.Start)
	if raw == "" || strings.EqualFold(raw, StartAuto) {
		return walk.StartAuto, true, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}
	return n, false, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
