package fit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/timewalk/fit"
	"gonum.org/v1/gonum/floats"
)

// BenchmarkCurve_Offset fits the bounded offset model to 80 points.
func BenchmarkCurve_Offset(b *testing.B) {
	x := floats.Span(make([]float64, 80), 0, 1)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 1/math.Pow(v+0.05, 1.8) + 0.2
	}
	opts := fit.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fit.Curve(x, y, opts); err != nil {
			b.Fatalf("Curve: %v", err)
		}
	}
}
