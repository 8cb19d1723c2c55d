package covplot

import (
	"bufio"
	"bytes"
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// Delimiters that tabular genomics files are written with. Anything else that
// the detector proposes, such as the "." in accession versions, is a
// coincidence of the data.
var knownDelimiters = map[rune]struct{}{
	'\t': {},
	',':  {},
	';':  {},
	'|':  {},
	' ':  {},
}

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file. Tab is assumed when nothing
// can be detected, since depth, BED and feature tables are all tab-delimited
// by convention.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	// Prefer tab whenever it is a candidate.
	for _, candidate := range delimiters {
		if candidate == "\t" {
			return '\t'
		}
	}

	for _, candidate := range delimiters {
		if len(candidate) != 1 {
			continue
		}
		if _, ok := knownDelimiters[rune(candidate[0])]; ok {
			return rune(candidate[0])
		}
	}

	return '\t'
}

// PeekDelimiter detects the delimiter from the first bytes of r without
// consuming them.
func PeekDelimiter(r *bufio.Reader) rune {
	head, _ := r.Peek(4096)
	if len(head) == 0 {
		return '\t'
	}

	return DetermineDelimiter(bytes.NewReader(head))
}
