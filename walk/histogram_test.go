package walk_test

import (
	"testing"

	"github.com/katalvlaran/timewalk/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHistogram_AddBounds checks the explicit "counted" flag of the bounds guard.
func TestHistogram_AddBounds(t *testing.T) {
	h, err := walk.NewHistogram(3, 1)
	require.NoError(t, err)

	assert.True(t, h.Add(0))
	assert.True(t, h.Add(2))
	assert.True(t, h.Add(2))
	assert.False(t, h.Add(-1), "negative positions are skipped")
	assert.False(t, h.Add(3), "positions at LENGTH are skipped")

	assert.Equal(t, []float64{1, 0, 2}, h.Values())
	assert.Equal(t, int64(3), h.Counted())
	assert.Equal(t, 3.0, h.Sum())
	assert.Equal(t, 2.0, h.Max())
}

// TestHistogram_ScaledUnit uses a non-unit increment.
func TestHistogram_ScaledUnit(t *testing.T) {
	h, err := walk.NewHistogram(2, 0.25)
	require.NoError(t, err)
	h.Add(1)
	h.Add(1)
	v, ok := h.At(1)
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)
	_, ok = h.At(2)
	assert.False(t, ok)
}

// TestHistogram_Normalized verifies [0,1] range with an exact 1 at the argmax.
func TestHistogram_Normalized(t *testing.T) {
	h, err := walk.NewHistogram(4, 1)
	require.NoError(t, err)
	for _, p := range []int{0, 1, 1, 1, 3} {
		h.Add(p)
	}
	norm, err := h.Normalized()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0 / 3, 1, 0, 1.0 / 3}, norm)
}

// TestHistogram_NormalizedEmpty surfaces the undefined normalization.
func TestHistogram_NormalizedEmpty(t *testing.T) {
	h, err := walk.NewHistogram(4, 1)
	require.NoError(t, err)
	_, err = h.Normalized()
	assert.ErrorIs(t, err, walk.ErrEmptyHistogram)
}

// TestHistogram_Merge adds per-position and rejects other shapes.
func TestHistogram_Merge(t *testing.T) {
	a, _ := walk.NewHistogram(3, 1)
	b, _ := walk.NewHistogram(3, 1)
	a.Add(0)
	b.Add(0)
	b.Add(2)
	require.NoError(t, a.Merge(b))
	assert.Equal(t, []float64{2, 0, 1}, a.Values())
	assert.Equal(t, int64(3), a.Counted())

	c, _ := walk.NewHistogram(4, 1)
	assert.ErrorIs(t, a.Merge(c), walk.ErrShapeMismatch)
	assert.NoError(t, a.Merge(nil))
}

// TestNewHistogram_Errors covers constructor validation.
func TestNewHistogram_Errors(t *testing.T) {
	_, err := walk.NewHistogram(0, 1)
	assert.ErrorIs(t, err, walk.ErrBadLength)
	_, err = walk.NewHistogram(3, 0)
	assert.ErrorIs(t, err, walk.ErrBadIncrement)
	_, err = walk.NewHistogram(3, -1)
	assert.ErrorIs(t, err, walk.ErrBadIncrement)
}
