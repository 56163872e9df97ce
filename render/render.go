// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/timewalk/spectrum"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	// ErrTooFewPoints indicates a series with fewer than two drawable points.
	ErrTooFewPoints = errors.New("render: need at least 2 points")

	// ErrLengthMismatch indicates a curve not aligned with the axis.
	ErrLengthMismatch = errors.New("render: series length differs from axis")
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 640
)

var (
	colorOccupancy = drawing.Color{R: 31, G: 119, B: 180, A: 255}
	colorBrach     = drawing.Color{R: 44, G: 160, B: 44, A: 255}
	colorInverse   = drawing.Color{R: 214, G: 39, B: 40, A: 255}
	colorFit       = drawing.Color{R: 255, G: 127, B: 14, A: 255}
)

// OccupancyData holds the series of the occupancy figure. Every non-empty
// series must have len(Axis) values; Fit may be nil.
type OccupancyData struct {
	Axis             []float64
	Normalized       []float64
	Brachistochrone  []float64
	InverseQuadratic []float64
	Fit              []float64
}

// Occupancy renders the occupancy figure as PNG.
func Occupancy(w io.Writer, d OccupancyData) error {
	n := len(d.Axis)
	if n < 2 {
		return fmt.Errorf("Occupancy: %w", ErrTooFewPoints)
	}
	if len(d.Normalized) != n {
		return fmt.Errorf("Occupancy: normalized: %w", ErrLengthMismatch)
	}

	series := []chart.Series{line("Expectancy", d.Axis, d.Normalized, colorOccupancy, 3)}
	extra := []struct {
		name  string
		ys    []float64
		color drawing.Color
	}{
		{"Brachistochrone", d.Brachistochrone, colorBrach},
		{"Inverse quadratic", d.InverseQuadratic, colorInverse},
		{"Power-law fit", d.Fit, colorFit},
	}
	for _, e := range extra {
		if e.ys == nil {
			continue
		}
		if len(e.ys) != n {
			return fmt.Errorf("Occupancy: %s: %w", e.name, ErrLengthMismatch)
		}
		series = append(series, line(e.name, d.Axis, e.ys, e.color, 2))
	}

	graph := chart.Chart{
		Title:  "Occupancy",
		Width:  DefaultWidth,
		Height: DefaultHeight,
		XAxis:  chart.XAxis{Name: "normalized position"},
		YAxis:  chart.YAxis{Name: "normalized occupancy"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("Occupancy: %w", err)
	}
	return nil
}

// Spectrum renders the log-log power spectrum as PNG. Bins with zero power
// are not drawn. When slope is non-nil its line is drawn over [low, high].
func Spectrum(w io.Writer, ps *spectrum.PowerSpectrum, slope *spectrum.Slope, band spectrum.SlopeOptions) error {
	if ps == nil {
		return fmt.Errorf("Spectrum: %w", ErrTooFewPoints)
	}
	var xs, ys []float64
	for i, f := range ps.Frequencies {
		if p := ps.Power[i]; p > 0 && f > 0 {
			xs = append(xs, math.Log10(f))
			ys = append(ys, math.Log10(p))
		}
	}
	if len(xs) < 2 {
		return fmt.Errorf("Spectrum: %w", ErrTooFewPoints)
	}

	series := []chart.Series{line("Power spectrum", xs, ys, colorOccupancy, 2)}
	if slope != nil {
		lo := math.Max(band.Low, ps.Frequencies[0])
		hi := math.Min(band.High, ps.Frequencies[len(ps.Frequencies)-1])
		if lo < hi {
			// log10 P = (Intercept + Exponent·ln f) / ln 10
			fx := []float64{math.Log10(lo), math.Log10(hi)}
			fy := []float64{
				(slope.Intercept + slope.Exponent*math.Log(lo)) / math.Ln10,
				(slope.Intercept + slope.Exponent*math.Log(hi)) / math.Ln10,
			}
			name := fmt.Sprintf("Fit (slope %.3f)", slope.Exponent)
			series = append(series, line(name, fx, fy, colorInverse, 2))
		}
	}

	graph := chart.Chart{
		Title:  "Power spectrum",
		Width:  DefaultWidth,
		Height: DefaultHeight,
		XAxis:  chart.XAxis{Name: "log10 frequency"},
		YAxis:  chart.YAxis{Name: "log10 power"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("Spectrum: %w", err)
	}
	return nil
}

func line(name string, xs, ys []float64, c drawing.Color, width float64) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeColor: c, StrokeWidth: width},
	}
}
