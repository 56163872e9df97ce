package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/timewalk/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	observability.ResetForTest()
	t.Cleanup(observability.ResetForTest)

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "timewalk version "+Version+"\n", out)

	out, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestSimulate_WritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "simulate",
		"--length", "20", "--iterations", "50", "--gradient", "5",
		"--seed", "3", "--out", dir, "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "particles: 50")
	assert.Contains(t, out, "spectral slope:")
	assert.Contains(t, out, "peak occupancy at position")
	for _, name := range []string{reportFile, occupancyFile, spectrumFile} {
		info, statErr := os.Stat(filepath.Join(dir, name))
		require.NoError(t, statErr, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}

	report, err := os.ReadFile(filepath.Join(dir, reportFile))
	require.NoError(t, err)
	assert.Contains(t, string(report), "length: 20")
	assert.Contains(t, string(report), "iterations: 50")
}

func TestSimulate_NoArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never")
	_, err := execute(t, "simulate", "--length", "10", "--iterations", "5", "--gradient", "5",
		"--out", dir, "--plots=false", "--report=false", "--log-level", "error")
	require.NoError(t, err)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSimulate_EnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "timewalk.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
simulation:
  length: 15
  iterations: 40
  gradient: 4
output:
  plots: false
  report: false
logger:
  level: error
`), 0o600))
	t.Setenv("TIMEWALK_SIMULATION_ITERATIONS", "25")

	out, err := execute(t, "--config", cfgPath, "simulate")
	require.NoError(t, err)
	assert.Contains(t, out, "particles: 25", "environment overrides the file")

	out, err = execute(t, "--config", cfgPath, "simulate", "--iterations", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "particles: 12", "flags override the environment")
}

func TestSimulate_InvalidConfig(t *testing.T) {
	_, err := execute(t, "simulate", "--length", "0", "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulation.length")

	_, err = execute(t, "simulate", "--mode", "sideways", "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulation.mode")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("simulation: [unclosed"), 0o600))
	_, err = execute(t, "--config", bad, "simulate")
	assert.Error(t, err)
}

func TestSpectrum_Synthetic(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "spectrum", "--synthetic", "2000", "--transition", "500",
		"--out", dir, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "bins: 999")
	assert.Contains(t, out, "spectral slope:")
	_, statErr := os.Stat(filepath.Join(dir, spectrumFile))
	assert.NoError(t, statErr)

	_, err = execute(t, "spectrum", "--synthetic", "0", "--plots=false", "--log-level", "error")
	assert.Error(t, err)
}
