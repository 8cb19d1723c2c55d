package covplot

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// SampleFile names the per-sample input file of one sample.
type SampleFile struct {
	Sample string `csv:"sample"`
	Path   string `csv:"path"`
}

// ReadSampleFiles parses a tab-delimited sample sheet with a header row naming
// the columns sample and path. A sample may only be listed once.
func ReadSampleFiles(r io.Reader) ([]SampleFile, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'

	records := []*SampleFile{}
	if err := gocsv.UnmarshalCSV(cr, &records); err != nil {
		return nil, pfx.Err(err)
	}

	seen := make(map[string]struct{}, len(records))
	out := make([]SampleFile, 0, len(records))
	for _, rec := range records {
		rec.Sample = strings.TrimSpace(rec.Sample)
		rec.Path = strings.TrimSpace(rec.Path)

		if _, exists := seen[rec.Sample]; exists {
			return nil, pfx.Err(fmt.Errorf("sample %q is listed more than once", rec.Sample))
		}
		seen[rec.Sample] = struct{}{}

		out = append(out, *rec)
	}

	return out, nil
}
