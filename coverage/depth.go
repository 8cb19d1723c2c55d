// Package coverage reads per-base sequencing depth and summarizes how well
// each sample covers the reference.
package coverage

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/covplot"
	"github.com/carbocation/pfx"
)

// ZeroDepth replaces a depth of 0 so that positions without coverage can be
// drawn on a log axis.
const ZeroDepth = 1e-10

// Sample holds the depth of one sample at consecutive reference positions.
type Sample struct {
	Name      string
	Reference string
	Positions []int
	Depths    []float64
}

// ReadDepths parses rows of sample name, reference, position and depth, in the
// layout emitted by `samtools depth` with a leading sample column. The
// delimiter is detected. Samples are returned in order of first appearance.
func ReadDepths(r io.Reader) ([]*Sample, error) {
	br := bufio.NewReader(r)

	cr := csv.NewReader(br)
	cr.Comma = covplot.PeekDelimiter(br)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	out := make([]*Sample, 0)
	bySample := make(map[string]*Sample)

	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		if len(row) < 4 {
			return nil, pfx.Err(fmt.Errorf("line %d: expected 4 columns, found %d", line, len(row)))
		}

		pos, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("line %d: position: %w", line, err))
		}

		depth, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("line %d: depth: %w", line, err))
		}
		if depth == 0 {
			depth = ZeroDepth
		}

		name := strings.TrimSpace(row[0])
		s, exists := bySample[name]
		if !exists {
			s = &Sample{Name: name, Reference: strings.TrimSpace(row[1])}
			bySample[name] = s
			out = append(out, s)
		}
		s.Positions = append(s.Positions, pos)
		s.Depths = append(s.Depths, depth)
	}

	return out, nil
}

// MaxDepth returns the largest depth over all samples, or 0 if there is none.
func MaxDepth(samples []*Sample) float64 {
	highest := 0.0
	for _, s := range samples {
		for _, d := range s.Depths {
			if d > highest {
				highest = d
			}
		}
	}

	return highest
}

// MaxPosition returns the largest position over all samples, which is the
// reference length when depth is reported at every base.
func MaxPosition(samples []*Sample) int {
	highest := 0
	for _, s := range samples {
		for _, p := range s.Positions {
			if p > highest {
				highest = p
			}
		}
	}

	return highest
}

// Names returns the sample names in order.
func Names(samples []*Sample) []string {
	out := make([]string, 0, len(samples))
	for _, s := range samples {
		out = append(out, s.Name)
	}

	return out
}
