package compare_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/timewalk/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDTW_EmptyInput rejects empty sequences on either side.
func TestDTW_EmptyInput(t *testing.T) {
	opts := compare.DefaultOptions()
	_, _, err := compare.DTW(nil, []float64{1}, opts)
	assert.ErrorIs(t, err, compare.ErrEmptyInput)
	_, _, err = compare.DTW([]float64{1}, []float64{}, opts)
	assert.ErrorIs(t, err, compare.ErrEmptyInput)
}

// TestDTW_BadOptions covers the window and penalty guards.
func TestDTW_BadOptions(t *testing.T) {
	opts := compare.DefaultOptions()
	opts.Window = -2
	_, _, err := compare.DTW([]float64{1}, []float64{1}, opts)
	assert.ErrorIs(t, err, compare.ErrBadInput)

	opts = compare.DefaultOptions()
	opts.SlopePenalty = -1
	_, _, err = compare.DTW([]float64{1}, []float64{1}, opts)
	assert.ErrorIs(t, err, compare.ErrBadInput)

	opts = compare.DefaultOptions()
	opts.ReturnPath = true
	_, _, err = compare.DTW([]float64{1}, []float64{1}, opts)
	assert.ErrorIs(t, err, compare.ErrPathNeedsMatrix)
}

// TestDTW_Identical has zero distance and a diagonal path.
func TestDTW_Identical(t *testing.T) {
	a := []float64{0, 1, 2, 3}
	opts := compare.DefaultOptions()
	opts.MemoryMode = compare.FullMatrix
	opts.ReturnPath = true

	dist, path, err := compare.DTW(a, a, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	require.Len(t, path, 4)
	for k, c := range path {
		assert.Equal(t, compare.Coord{I: k, J: k}, c)
	}
}

// TestDTW_Stretch aligns a repeated sample at zero cost.
func TestDTW_Stretch(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	opts := compare.DefaultOptions()
	opts.MemoryMode = compare.FullMatrix
	opts.ReturnPath = true

	dist, path, err := compare.DTW(a, b, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	require.Len(t, path, 4)
	assert.Equal(t, compare.Coord{I: 0, J: 0}, path[0])
	assert.Equal(t, compare.Coord{I: 2, J: 3}, path[3])

	// a penalty is charged for the single non-diagonal step
	opts.SlopePenalty = 0.25
	dist, _, err = compare.DTW(a, b, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, dist, 1e-12)
}

// TestDTW_Window makes mismatched lengths unreachable under a zero band.
func TestDTW_Window(t *testing.T) {
	opts := compare.DefaultOptions()
	opts.Window = 0
	dist, _, err := compare.DTW([]float64{1, 2, 3}, []float64{1, 2, 3, 4}, opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1))

	dist, _, err = compare.DTW([]float64{1, 2, 3}, []float64{2, 3, 4}, opts)
	require.NoError(t, err)
	assert.Equal(t, 3.0, dist, "diagonal only: Σ|a_i − b_i|")
}

// TestDTW_ModesAgree: TwoRows and FullMatrix give the same distance.
func TestDTW_ModesAgree(t *testing.T) {
	a := []float64{0, 0.3, 1, 0.7, 0.2, 0.1}
	b := []float64{0.1, 0.9, 0.8, 0.3, 0.1}
	for _, w := range []int{compare.NoWindow, 1, 2} {
		full := compare.Options{Window: w, SlopePenalty: 0.05, MemoryMode: compare.FullMatrix}
		rows := full
		rows.MemoryMode = compare.TwoRows
		d1, _, err := compare.DTW(a, b, full)
		require.NoError(t, err)
		d2, _, err := compare.DTW(a, b, rows)
		require.NoError(t, err)
		assert.Equal(t, d1, d2, "window=%d", w)
	}
}
