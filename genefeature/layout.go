package genefeature

import "encoding/json"

// Placed is a feature positioned on the track.
type Placed struct {
	// Index is continuous over the placed features, which the chart relies on
	// to look items up by data index.
	Index  int
	Name   string
	Start  int
	End    int
	Level  float64
	Strand int
	Color  string
}

type itemStyle struct {
	Color string `json:"color"`
}

type placedJSON struct {
	Name      string        `json:"name"`
	Value     []interface{} `json:"value"`
	ItemStyle itemStyle     `json:"itemStyle"`
}

// MarshalJSON encodes the feature as a custom-series data item.
func (p Placed) MarshalJSON() ([]byte, error) {
	return json.Marshal(placedJSON{
		Name:      p.Name,
		Value:     []interface{}{p.Index, p.Start, p.End, p.Level, p.Strand, "gene_feature"},
		ItemStyle: itemStyle{Color: p.Color},
	})
}

type strandState struct {
	start, end int
	level      float64
}

// Layout places features in order. Each strand keeps its own lane: a feature
// overlapping the previous feature on its strand is raised to the bumped
// level, unless the previous feature was itself raised, in which case it drops
// back to the base level.
func Layout(features []Feature, props Properties) []Placed {
	out := make([]Placed, 0, len(features))

	var plus, minus strandState
	color := 0

	for _, f := range features {
		if f.Skipped() {
			continue
		}

		state, base := &minus, props.MinusStrandLevel
		if f.Strand == 1 {
			state, base = &plus, props.PlusStrandLevel
		}

		level := base
		if Overlap(state.start, state.end, f.Start, f.End) && state.level != props.BumpedLevel(base) {
			level = props.BumpedLevel(base)
		}
		*state = strandState{start: f.Start, end: f.End, level: level}

		out = append(out, Placed{
			Index:  len(out),
			Name:   f.Label(),
			Start:  f.Start,
			End:    f.End,
			Level:  level,
			Strand: f.Strand,
			Color:  Palette[color%len(Palette)],
		})
		color++
	}

	return out
}

// Overlap reports whether either end of the second interval falls within the
// first.
func Overlap(start1, end1, start2, end2 int) bool {
	return (start1 <= start2 && start2 <= end1) || (start1 <= end2 && end2 <= end1)
}
