package walk_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/timewalk/field"
	"github.com/katalvlaran/timewalk/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustField(t testing.TB, n int, g float64, opts ...field.Option) field.Field {
	t.Helper()
	f, err := field.Linear(n, g, opts...)
	require.NoError(t, err)
	return f
}

// TestStep_OnlyUnitMoves checks that every in-domain step is exactly ±1 in both modes.
func TestStep_OnlyUnitMoves(t *testing.T) {
	const n = 50
	f := mustField(t, n, 0.8)
	rng := rand.New(rand.NewSource(7))
	for _, mode := range []walk.Mode{walk.Unidirectional, walk.Bidirectional} {
		s, err := walk.NewStepper(f, mode, 0.3)
		require.NoError(t, err)
		for pos := 0; pos < n; pos++ {
			for k := 0; k < 20; k++ {
				next := s.Step(pos, rng)
				assert.True(t, next == pos+1 || next == pos-1, "%v: pos=%d next=%d", mode, pos, next)
			}
		}
	}
}

// TestProbability_Unidirectional checks the additive rule and the wrap-around read.
func TestProbability_Unidirectional(t *testing.T) {
	f := mustField(t, 5, 2) // [0 0.5 1 1.5 2]
	s, err := walk.NewStepper(f, walk.Unidirectional, 0)
	require.NoError(t, err)

	assert.Equal(t, 0.25, s.Probability(0, 0.25))
	assert.Equal(t, 1.25, s.Probability(2, 0.25), "values above 1 saturate toward +1")
	assert.Equal(t, 2.25, s.Probability(-1, 0.25), "pos=-1 reads field[LENGTH-1]")
	assert.Equal(t, 0.25, s.Probability(-5, 0.25), "pos=-LENGTH reads field[0]")
	assert.Equal(t, 0.25, s.Probability(-6, 0.25), "beyond -LENGTH the draw decides alone")
}

// TestProbability_Bidirectional checks subtraction, attraction and mirroring.
func TestProbability_Bidirectional(t *testing.T) {
	f := mustField(t, 5, 2) // [0 0.5 1 1.5 2]
	s, err := walk.NewStepper(f, walk.Bidirectional, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.6-1+0.4, s.Probability(2, 0.6), 1e-12)
	assert.InDelta(t, 0.6-1+0.4, s.Probability(-2, 0.6), 1e-12, "mirror of pos=2")
	assert.InDelta(t, 0.6-2+0.8, s.Probability(-4, 0.6), 1e-12)
	assert.Equal(t, 0.6, s.Probability(5, 0.6), "pos=LENGTH has no field")
	assert.Equal(t, 0.6, s.Probability(-5, 0.6), "mirror index LENGTH has no field")
}

// TestStep_FallbackIsFairCoin: wherever the field has no value both moves occur
// about equally often, so a particle outside the field can always come back.
func TestStep_FallbackIsFairCoin(t *testing.T) {
	const n, draws = 10, 10000
	f := mustField(t, n, 3)
	cases := []struct {
		mode walk.Mode
		pos  int
	}{
		{walk.Unidirectional, -n - 1},
		{walk.Unidirectional, -5 * n},
		{walk.Bidirectional, n},
		{walk.Bidirectional, -n},
		{walk.Bidirectional, 3 * n},
	}
	for _, tc := range cases {
		s, err := walk.NewStepper(f, tc.mode, 0)
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(1))
		up := 0
		for k := 0; k < draws; k++ {
			next := s.Step(tc.pos, rng)
			require.True(t, next == tc.pos+1 || next == tc.pos-1)
			if next == tc.pos+1 {
				up++
			}
		}
		assert.InDelta(t, 0.5, float64(up)/draws, 0.03, "%v pos=%d", tc.mode, tc.pos)
	}
}

// TestStep_SeedDeterminism: identical seeds give identical step sequences.
func TestStep_SeedDeterminism(t *testing.T) {
	f := mustField(t, 30, 0.2)
	s, err := walk.NewStepper(f, walk.Unidirectional, 0)
	require.NoError(t, err)
	run := func() []int {
		rng := rand.New(rand.NewSource(99))
		out := make([]int, 0, 200)
		pos := 1
		for k := 0; k < 200; k++ {
			pos = s.Step(pos, rng)
			out = append(out, pos)
		}
		return out
	}
	assert.Equal(t, run(), run())
}

// TestNewStepper_Errors covers mode and lambda validation.
func TestNewStepper_Errors(t *testing.T) {
	f := mustField(t, 4, 1)
	_, err := walk.NewStepper(f, walk.Mode(9), 0)
	assert.ErrorIs(t, err, walk.ErrUnknownMode)
	_, err = walk.NewStepper(f, walk.Bidirectional, math.NaN())
	assert.ErrorIs(t, err, walk.ErrBadLambda)
	_, err = walk.NewStepper(field.Field{}, walk.Unidirectional, 0)
	assert.ErrorIs(t, err, walk.ErrBadLength)
}

// TestParseMode accepts long and short names.
func TestParseMode(t *testing.T) {
	for in, want := range map[string]walk.Mode{
		"unidirectional": walk.Unidirectional,
		"UNI":            walk.Unidirectional,
		"bidirectional":  walk.Bidirectional,
		" bi ":           walk.Bidirectional,
	} {
		got, err := walk.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := walk.ParseMode("sideways")
	assert.ErrorIs(t, err, walk.ErrUnknownMode)
	assert.Equal(t, "bidirectional", walk.Bidirectional.String())
	assert.Equal(t, "Mode(7)", walk.Mode(7).String())
}
