package genefeature

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// Feature is one annotated region of the reference. Start and End are 1-based
// and inclusive. Strand is 1 for the plus strand; any other value is drawn on
// the minus strand.
type Feature struct {
	Name   string `csv:"name"`
	Type   string `csv:"type"`
	Start  int    `csv:"start"`
	End    int    `csv:"end"`
	Strand int    `csv:"strand"`
}

// Skipped reports whether the feature type is left off the track. Coding
// sequences duplicate their genes, and the source feature spans the whole
// reference.
func (f Feature) Skipped() bool {
	return f.Type == "CDS" || f.Type == "source"
}

// Label is the text drawn on the feature.
func (f Feature) Label() string {
	if f.Type == "5'UTR" || f.Type == "3'UTR" {
		return f.Type
	}

	return f.Name
}

// ReadFeatures parses a tab-delimited feature table with a header row naming
// the columns name, type, start, end and strand.
func ReadFeatures(r io.Reader) ([]Feature, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.LazyQuotes = true

	records := []*Feature{}
	if err := gocsv.UnmarshalCSV(cr, &records); err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]Feature, 0, len(records))
	for _, rec := range records {
		rec.Name = strings.TrimSpace(rec.Name)
		rec.Type = strings.TrimSpace(rec.Type)
		out = append(out, *rec)
	}

	return out, nil
}
