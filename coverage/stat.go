package coverage

import (
	"fmt"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// DefaultLowDepth is the depth below which a position counts as poorly
// covered.
const DefaultLowDepth = 10

// Stat summarizes one sample's coverage. The formatted fields are ready for
// display in the coverage table.
type Stat struct {
	Sample         string
	MeanCoverage   string
	MedianCoverage string
	GenomeCoverage string
	LowPositions   int
	ZeroPositions  int
	LowRegions     string
	ZeroRegions    string
}

// Row returns the fields in table order.
func (s Stat) Row() []string {
	return []string{
		s.Sample,
		s.MeanCoverage,
		s.MedianCoverage,
		s.GenomeCoverage,
		fmt.Sprint(s.LowPositions),
		fmt.Sprint(s.ZeroPositions),
		s.LowRegions,
		s.ZeroRegions,
	}
}

// Header names the columns of Row.
func Header() []string {
	return []string{
		"sample",
		"mean_coverage",
		"median_coverage",
		"genome_coverage",
		"low_positions",
		"zero_positions",
		"low_regions",
		"zero_regions",
	}
}

// Summarize computes the coverage statistics of s, treating depths below low
// as poorly covered.
func Summarize(s *Sample, low float64) (Stat, error) {
	out := Stat{Sample: s.Name}

	if len(s.Depths) == 0 {
		return out, pfx.Err(fmt.Errorf("sample %q has no depth data", s.Name))
	}

	median, err := stats.Median(s.Depths)
	if err != nil {
		return out, pfx.Err(err)
	}

	covered := 0
	for _, d := range s.Depths {
		if d >= low {
			covered++
		}
		if d < low {
			out.LowPositions++
		}
		if d == ZeroDepth {
			out.ZeroPositions++
		}
	}

	out.MeanCoverage = fmt.Sprintf("%.1fX", stat.Mean(s.Depths, nil))
	out.MedianCoverage = fmt.Sprintf("%.1fX", median)
	out.GenomeCoverage = fmt.Sprintf("%.2f%%", 100*float64(covered)/float64(len(s.Depths)))
	out.LowRegions = IntervalCoords(s.Positions, s.Depths, low-1)
	out.ZeroRegions = IntervalCoords(s.Positions, s.Depths, ZeroDepth)

	return out, nil
}

// IntervalCoords collapses the positions whose depth is at most threshold
// into runs of consecutive positions, formatted as "start-end" and joined by
// "; ".
func IntervalCoords(positions []int, depths []float64, threshold float64) string {
	runs := make([][2]int, 0)

	for i, pos := range positions {
		if i >= len(depths) || depths[i] > threshold {
			continue
		}

		if n := len(runs); n > 0 && runs[n-1][1]+1 == pos {
			runs[n-1][1] = pos
			continue
		}
		runs = append(runs, [2]int{pos, pos})
	}

	parts := make([]string, 0, len(runs))
	for _, r := range runs {
		parts = append(parts, fmt.Sprintf("%d-%d", r[0], r[1]))
	}

	return strings.Join(parts, "; ")
}
