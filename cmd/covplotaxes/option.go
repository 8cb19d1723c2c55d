package main

import (
	"fmt"

	"github.com/carbocation/covplot/axes"
	"github.com/carbocation/covplot/compileinfo"
	"github.com/carbocation/covplot/coverage"
	"github.com/carbocation/covplot/genefeature"
	"github.com/carbocation/covplot/variant"
)

// Option is the fragment of the chart option that this tool produces. The page
// template merges it with series, grids and tooltips.
type Option struct {
	XAxis       []axes.Axis                        `json:"xAxis"`
	YAxis       []axes.Axis                        `json:"yAxis"`
	GridHeight  string                             `json:"auxGridHeight,omitempty"`
	GeneFeature []genefeature.Placed               `json:"geneFeature,omitempty"`
	Amplicons   map[string][]coverage.AmpliconItem `json:"amplicons,omitempty"`
	Variants    map[string]variant.Track           `json:"variants,omitempty"`
	About       string                             `json:"about"`
}

type optionInput struct {
	Samples  []string
	XMax     float64
	Scale    axes.Scale
	YMax     float64
	Flags    axes.Flags
	Props    genefeature.Properties
	Features []genefeature.Feature

	// Keyed by sample name.
	Amplicons map[string][]coverage.Amplicon
	Variants  map[string]variant.Calls
}

func newOption(in optionInput) (Option, error) {
	out := Option{
		XAxis: axes.BuildXAxes(in.Samples, in.XMax, in.Flags),
		YAxis: axes.BuildYAxes(in.Samples, in.Scale, in.YMax, in.Flags, in.Props),
		About: compileinfo.Get().String(),
	}

	known := make(map[string]struct{}, len(in.Samples))
	for _, s := range in.Samples {
		known[s] = struct{}{}
	}

	if in.Flags.Extra() {
		out.GridHeight = in.Props.GridHeight
	}

	if in.Flags.GeneFeature {
		out.GeneFeature = genefeature.Layout(in.Features, in.Props)
	}

	if in.Flags.Amplicon && len(in.Amplicons) > 0 {
		out.Amplicons = make(map[string][]coverage.AmpliconItem, len(in.Amplicons))
		for sample, amplicons := range in.Amplicons {
			if _, ok := known[sample]; !ok {
				return out, fmt.Errorf("amplicons given for unknown sample %q", sample)
			}

			items, err := coverage.AmpliconItems(amplicons)
			if err != nil {
				return out, fmt.Errorf("sample %s: %w", sample, err)
			}
			out.Amplicons[sample] = items
		}
	}

	if len(in.Variants) > 0 {
		out.Variants = make(map[string]variant.Track, len(in.Variants))
		for sample, calls := range in.Variants {
			if _, ok := known[sample]; !ok {
				return out, fmt.Errorf("variants given for unknown sample %q", sample)
			}
			out.Variants[sample] = calls.Track()
		}
	}

	return out, nil
}
