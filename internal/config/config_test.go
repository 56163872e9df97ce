package config

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/timewalk/compare"
	"github.com/katalvlaran/timewalk/walk"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Constructor and Defaults Tests --

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 80, cfg.Simulation.Length)
	assert.Equal(t, 10000, cfg.Simulation.Iterations)
	assert.Equal(t, 0.5, cfg.Simulation.Gradient)
	assert.Equal(t, 1.0, cfg.Simulation.Increment)
	assert.Equal(t, "unidirectional", cfg.Simulation.Mode)
	assert.Equal(t, StartAuto, cfg.Simulation.Start)
	assert.Equal(t, int64(1), cfg.Simulation.Seed)
	assert.Equal(t, 1, cfg.Simulation.Workers)
	assert.Equal(t, walk.DefaultMaxSteps, cfg.Simulation.MaxSteps)
	assert.True(t, cfg.Analysis.FitOffset)
	assert.Equal(t, 4e-3, cfg.Analysis.LowCut)
	assert.Equal(t, compare.NoWindow, cfg.Analysis.DTWWindow)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "green", cfg.Logger.Colors.Info)
	assert.NoError(t, cfg.Validate())
}

// -- Validation Logic Tests --

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"length", func(c *Config) { c.Simulation.Length = 0 }, "simulation.length"},
		{"iterations", func(c *Config) { c.Simulation.Iterations = -1 }, "simulation.iterations"},
		{"increment", func(c *Config) { c.Simulation.Increment = 0 }, "simulation.increment"},
		{"mode", func(c *Config) { c.Simulation.Mode = "sideways" }, "simulation.mode"},
		{"start", func(c *Config) { c.Simulation.Start = "left" }, "simulation.start"},
		{"workers", func(c *Config) { c.Simulation.Workers = 0 }, "simulation.workers"},
		{"max steps", func(c *Config) { c.Simulation.MaxSteps = -5 }, "simulation.max_steps"},
		{"evaluations", func(c *Config) { c.Analysis.MaxEvaluations = 0 }, "analysis.max_evaluations"},
		{"band", func(c *Config) { c.Analysis.LowCut = 0.5 }, "analysis.low_cut"},
		{"window", func(c *Config) { c.Analysis.DTWWindow = -3 }, "analysis.dtw_window"},
		{"output", func(c *Config) { c.Output.Dir = "" }, "output.dir"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}

	t.Run("output dir optional without artifacts", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Output = OutputConfig{}
		assert.NoError(t, cfg.Validate())
	})
}

// -- Viper Integration Tests --

func TestNewConfigFromViper(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	yamlConfig := []byte(`
simulation:
  length: 120
  gradient: 2.5
  mode: bidirectional
  lambda: 0.3
  start: "7"
  workers: 4
analysis:
  fit_offset: false
  dtw_window: 10
logger:
  level: debug
`)
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(yamlConfig)))

	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Simulation.Length)
	assert.Equal(t, 10000, cfg.Simulation.Iterations, "default survives a partial file")
	assert.Equal(t, "debug", cfg.Logger.Level)

	exp, err := cfg.Experiment()
	require.NoError(t, err)
	assert.Equal(t, 120, exp.Length)
	assert.Equal(t, 2.5, exp.Gradient)
	assert.Equal(t, walk.Bidirectional, exp.Walk.Mode)
	assert.Equal(t, 0.3, exp.Walk.Lambda)
	assert.Equal(t, 7, exp.Walk.Start)
	assert.Equal(t, 4, exp.Walk.Workers)
	assert.False(t, exp.Fit.Offset)
	assert.Len(t, exp.Fit.Initial, 2)
	assert.Equal(t, 10, exp.Compare.Window)
}

func TestNewConfigFromViper_Invalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("simulation.length", -1)
	_, err := NewConfigFromViper(v)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestExperiment_AutoStart(t *testing.T) {
	cfg := NewDefaultConfig()
	exp, err := cfg.Experiment()
	require.NoError(t, err)
	assert.Equal(t, walk.StartAuto, exp.Walk.Start)
	assert.Equal(t, walk.Unidirectional, exp.Walk.Mode)
	assert.True(t, exp.Fit.Offset)
	assert.Equal(t, int64(1), exp.Walk.Seed)

	cfg.Simulation.Mode = "nope"
	_, err = cfg.Experiment()
	assert.ErrorIs(t, err, ErrInvalid)
}
