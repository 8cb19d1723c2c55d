// Package preview renders a static PNG of one sample's coverage, bounded by
// the same axis descriptors that the interactive chart uses.
package preview

import (
	"fmt"
	"io"
	"math"

	"github.com/carbocation/covplot/axes"
	"github.com/carbocation/covplot/coverage"
	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
)

const (
	Width  = 1024
	Height = 256
)

// Render draws the coverage of s in the bounds given by x and y. A log y axis
// is drawn as log10 of the depth between log10 of its bounds.
func Render(w io.Writer, s *coverage.Sample, x, y axes.Axis) error {
	if !x.Show() || !y.Show() {
		return pfx.Err(fmt.Errorf("sample %s: cannot draw on a hidden axis", s.Name))
	}

	if len(s.Positions) != len(s.Depths) {
		return pfx.Err(fmt.Errorf("sample %s: %d positions but %d depths", s.Name, len(s.Positions), len(s.Depths)))
	}

	xValues := make([]float64, 0, len(s.Positions))
	for _, p := range s.Positions {
		xValues = append(xValues, float64(p))
	}

	yValues, yRange := Transform(s.Depths, y)

	graph := chart.Chart{
		Width:  Width,
		Height: Height,
		Title:  s.Name,
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: x.Min, Max: x.Max},
		},
		YAxis: chart.YAxis{
			Name:  yName(y),
			Range: yRange,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    s.Name,
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// Transform maps depths onto the scale of y and returns the matching range.
func Transform(depths []float64, y axes.Axis) ([]float64, *chart.ContinuousRange) {
	out := make([]float64, len(depths))

	if y.Kind != axes.KindLog {
		copy(out, depths)
		return out, &chart.ContinuousRange{Min: y.Min, Max: y.Max}
	}

	for i, d := range depths {
		// Depths are floored at coverage.ZeroDepth, which would otherwise
		// stretch the axis far below its minimum.
		out[i] = math.Log10(math.Max(d, y.Min))
	}

	return out, &chart.ContinuousRange{Min: math.Log10(y.Min), Max: math.Log10(y.Max)}
}

func yName(y axes.Axis) string {
	if y.Kind == axes.KindLog {
		return "log10(depth)"
	}

	return "depth"
}
