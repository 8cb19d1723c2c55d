// Package axes builds the per-grid x and y axis descriptors of a whole-genome
// coverage chart: one grid per sample, optionally followed by one grid shared
// by the gene feature and amplicon tracks.
package axes

import (
	"github.com/carbocation/covplot/genefeature"
)

// BuildXAxes returns one x axis per sample spanning [1, xAxisMax], plus one
// more for the auxiliary grid when flags.Extra() is set.
func BuildXAxes(samples []string, xAxisMax float64, flags Flags) []Axis {
	out := make([]Axis, 0, len(samples)+1)

	for i := range samples {
		out = append(out, xAxis(i, xAxisMax))
	}

	if flags.Extra() {
		out = append(out, xAxis(len(samples), xAxisMax))
	}

	return out
}

// BuildYAxes returns one y axis per sample, labelled with the sample name,
// plus a hidden spacer axis for the auxiliary grid when flags.Extra() is set.
// The spacer is props.MaxGridHeight tall.
func BuildYAxes(samples []string, scale Scale, yMax float64, flags Flags, props genefeature.Properties) []Axis {
	out := make([]Axis, 0, len(samples)+1)

	for i, sample := range samples {
		out = append(out, Axis{
			Kind:      scale.Kind(),
			GridIndex: i,
			Name:      sample,
			NameTextStyle: &TextStyle{
				FontStyle:  "normal",
				FontWeight: "bolder",
			},
			NameLocation:   "end",
			Min:            scale.Min(),
			Max:            yMax,
			MinorSplitLine: &SplitLine{Show: true},
		})
	}

	if flags.Extra() {
		out = append(out, Axis{
			Kind:      KindSpacer,
			GridIndex: len(samples),
			Max:       props.MaxGridHeight,
		})
	}

	return out
}

// BuildXAxesFromStrings accepts the flags in their serialized "True"/"False"
// form.
func BuildXAxesFromStrings(samples []string, xAxisMax float64, geneFeature, amplicon string) []Axis {
	return BuildXAxes(samples, xAxisMax, ParseFlags(geneFeature, amplicon))
}

// BuildYAxesFromStrings accepts the scale and flags in their serialized form.
func BuildYAxesFromStrings(samples []string, scaleType string, yMax float64, geneFeature, amplicon string, props genefeature.Properties) []Axis {
	return BuildYAxes(samples, ParseScale(scaleType), yMax, ParseFlags(geneFeature, amplicon), props)
}

func xAxis(gridIndex int, xAxisMax float64) Axis {
	return Axis{
		Kind:      KindValue,
		GridIndex: gridIndex,
		Min:       1,
		Max:       xAxisMax,
		AxisLabel: &AxisLabel{Interval: "auto"},
	}
}
