package spectrum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/timewalk/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(n int, f0, offset float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = offset + math.Sin(2*math.Pi*f0*float64(i))
	}
	return out
}

// TestCompute_PositiveHalf keeps bins 1…⌊(n−1)/2⌋ at frequency k/n.
func TestCompute_PositiveHalf(t *testing.T) {
	for _, n := range []int{8, 9} {
		ps, err := spectrum.Compute(make([]float64, n))
		require.NoError(t, err)
		want := (n - 1) / 2
		require.Equal(t, want, ps.Len(), "n=%d", n)
		for k := 1; k <= want; k++ {
			assert.InDelta(t, float64(k)/float64(n), ps.Frequencies[k-1], 1e-15)
		}
		for i := 1; i < ps.Len(); i++ {
			assert.Less(t, ps.Frequencies[i-1], ps.Frequencies[i])
		}
		assert.Greater(t, ps.Frequencies[0], 0.0)
		assert.Less(t, ps.Frequencies[ps.Len()-1], 0.5)
	}
}

// TestCompute_SinePeak finds the bin nearest the sinusoid frequency.
func TestCompute_SinePeak(t *testing.T) {
	cases := []struct {
		n  int
		f0 float64
	}{
		{256, 10.0 / 256},
		{256, 0.12},
		{500, 0.05},
		{100, 0.31},
	}
	for _, tc := range cases {
		ps, err := spectrum.Compute(sine(tc.n, tc.f0, 5))
		require.NoError(t, err)
		f, p := ps.Peak()
		nearest := math.Round(tc.f0*float64(tc.n)) / float64(tc.n)
		assert.InDelta(t, nearest, f, 1e-12, "n=%d f0=%g", tc.n, tc.f0)
		assert.Greater(t, p, 0.0)
	}
}

// TestCompute_ParsevalOnBin checks the power of an exact-bin sinusoid: |X_k| = n/2.
func TestCompute_ParsevalOnBin(t *testing.T) {
	n := 64
	ps, err := spectrum.Compute(sine(n, 4.0/64, 0))
	require.NoError(t, err)
	f, p := ps.Peak()
	assert.InDelta(t, 4.0/64, f, 1e-15)
	assert.InDelta(t, float64(n*n)/4, p, 1e-6)
}

// TestCompute_Errors covers short and non-finite signals.
func TestCompute_Errors(t *testing.T) {
	_, err := spectrum.Compute([]float64{1, 2})
	assert.ErrorIs(t, err, spectrum.ErrEmptySignal)
	_, err = spectrum.Compute([]float64{1, math.Inf(1), 2})
	assert.ErrorIs(t, err, spectrum.ErrNonFinite)
}

// TestFitSlope_PowerLaw recovers the exponent of P(f) = 3·f^−2 over the default band.
func TestFitSlope_PowerLaw(t *testing.T) {
	ps := &spectrum.PowerSpectrum{}
	for k := 1; k <= 499; k++ {
		f := float64(k) / 1000
		ps.Frequencies = append(ps.Frequencies, f)
		ps.Power = append(ps.Power, 3/(f*f))
	}
	sl, err := spectrum.FitSlope(ps, spectrum.DefaultSlopeOptions())
	require.NoError(t, err)
	assert.InDelta(t, -2.0, sl.Exponent, 1e-9)
	assert.InDelta(t, math.Log(3), sl.Intercept, 1e-9)
	// open band: 0.005 … 0.399
	assert.Equal(t, 395, sl.Points)
}

// TestFitSlope_Insufficient fails explicitly instead of returning a slope.
func TestFitSlope_Insufficient(t *testing.T) {
	ps := &spectrum.PowerSpectrum{
		Frequencies: []float64{0.001, 0.1, 0.45},
		Power:       []float64{1, 2, 3},
	}
	_, err := spectrum.FitSlope(ps, spectrum.DefaultSlopeOptions())
	assert.ErrorIs(t, err, spectrum.ErrInsufficientBand)

	// zero power has no logarithm
	ps.Frequencies = []float64{0.1, 0.2}
	ps.Power = []float64{0, 1}
	_, err = spectrum.FitSlope(ps, spectrum.DefaultSlopeOptions())
	assert.ErrorIs(t, err, spectrum.ErrInsufficientBand)

	_, err = spectrum.FitSlope(nil, spectrum.DefaultSlopeOptions())
	assert.ErrorIs(t, err, spectrum.ErrInsufficientBand)
}

// TestFitSlope_BadBand rejects inverted cutoffs.
func TestFitSlope_BadBand(t *testing.T) {
	ps, err := spectrum.Compute(sine(64, 0.1, 1))
	require.NoError(t, err)
	_, err = spectrum.FitSlope(ps, spectrum.SlopeOptions{Low: 0.3, High: 0.1})
	assert.ErrorIs(t, err, spectrum.ErrBadBand)
	_, err = spectrum.FitSlope(ps, spectrum.SlopeOptions{Low: -1, High: 0.1})
	assert.ErrorIs(t, err, spectrum.ErrBadBand)
}

// TestPeak_Empty returns zeros.
func TestPeak_Empty(t *testing.T) {
	f, p := (&spectrum.PowerSpectrum{}).Peak()
	assert.Zero(t, f)
	assert.Zero(t, p)
}
