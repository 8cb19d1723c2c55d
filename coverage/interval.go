package coverage

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// IntervalDepth is one row of a per-base BED depth file, as written by
// `mosdepth --per-base`: a half-open, 0-based interval of constant depth.
type IntervalDepth struct {
	Reference string  `csv:"reference"`
	Start     int     `csv:"start"`
	End       int     `csv:"end"`
	Depth     float64 `csv:"depth"`
}

// ReadIntervalDepths expands a headerless, tab-delimited per-base BED file into
// the depth at every position 1..refLen. Depth 0, and any position that no
// interval covers, becomes ZeroDepth. Intervals reaching past refLen are
// truncated.
func ReadIntervalDepths(r io.Reader, refLen int) (*Sample, error) {
	if refLen < 1 {
		return nil, pfx.Err(fmt.Errorf("reference length must be positive, got %d", refLen))
	}

	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'

	records := []*IntervalDepth{}
	if err := gocsv.UnmarshalCSVWithoutHeaders(cr, &records); err != nil {
		return nil, pfx.Err(err)
	}

	out := &Sample{
		Positions: make([]int, refLen),
		Depths:    make([]float64, refLen),
	}
	for i := range out.Positions {
		out.Positions[i] = i + 1
		out.Depths[i] = ZeroDepth
	}

	for _, rec := range records {
		if out.Reference == "" {
			out.Reference = rec.Reference
		}

		depth := rec.Depth
		if depth == 0 {
			depth = ZeroDepth
		}

		start, end := rec.Start, rec.End
		if start < 0 {
			start = 0
		}
		if end > refLen {
			end = refLen
		}
		for i := start; i < end; i++ {
			out.Depths[i] = depth
		}
	}

	return out, nil
}
