package coverage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// Amplicon is one row of a per-sample amplicon depth BED file.
type Amplicon struct {
	Reference string  `csv:"reference"`
	Start     int     `csv:"start"`
	End       int     `csv:"end"`
	Name      string  `csv:"amplicon"`
	Depth     float64 `csv:"depth"`
}

// ReadAmplicons parses a headerless, tab-delimited amplicon BED file.
func ReadAmplicons(r io.Reader) ([]Amplicon, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'

	records := []*Amplicon{}
	if err := gocsv.UnmarshalCSVWithoutHeaders(cr, &records); err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]Amplicon, 0, len(records))
	for _, rec := range records {
		out = append(out, *rec)
	}

	return out, nil
}

// Pool returns the primer pool of an amplicon, which is the integer after the
// final underscore of its name (e.g. nCoV-2019_12 is in pool 12).
func Pool(name string) (int, error) {
	idx := strings.LastIndex(name, "_")
	pool, err := strconv.Atoi(name[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("amplicon %q: cannot parse pool: %w", name, err)
	}

	return pool, nil
}

// AmpliconColor alternates colours between odd and even pools so that
// neighbouring, overlapping amplicons can be told apart.
func AmpliconColor(name string) (string, error) {
	pool, err := Pool(name)
	if err != nil {
		return "", err
	}

	if pool%2 != 0 {
		return "violet", nil
	}

	return "skyblue", nil
}

// AmpliconItem is an amplicon drawn on the amplicon track.
type AmpliconItem struct {
	Amplicon
	Color string
}

func (a AmpliconItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value     []interface{}     `json:"value"`
		ItemStyle map[string]string `json:"itemStyle"`
	}{
		Value:     []interface{}{a.Start, a.End, a.Depth, a.Name},
		ItemStyle: map[string]string{"color": a.Color},
	})
}

// AmpliconItems colours amplicons for display.
func AmpliconItems(amplicons []Amplicon) ([]AmpliconItem, error) {
	out := make([]AmpliconItem, 0, len(amplicons))
	for _, a := range amplicons {
		color, err := AmpliconColor(a.Name)
		if err != nil {
			return nil, pfx.Err(err)
		}
		out = append(out, AmpliconItem{Amplicon: a, Color: color})
	}

	return out, nil
}
