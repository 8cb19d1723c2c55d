// Package variant reads the variant calls of one sample so they can be marked
// on that sample's coverage grid.
package variant

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/carbocation/vcfgo"
)

// Call is one VCF record. Alt keeps the comma-joined ALT column.
type Call struct {
	Chrom  string
	Pos    int
	ID     string
	Ref    string
	Alt    string
	Filter string
}

type key struct {
	chrom, id, ref, alt, filter string
	pos                         int
}

func (c Call) key() key {
	return key{chrom: c.Chrom, pos: c.Pos, id: c.ID, ref: c.Ref, alt: c.Alt, filter: c.Filter}
}

// Calls are the de-duplicated records of one VCF, in file order.
type Calls struct {
	// Caller is taken from the ##source= header line, or is "nanopolish" when
	// a ##nanopolish line is present. When both appear, the later line wins.
	Caller string
	Calls  []Call
}

// Read parses a VCF. Records repeating the CHROM, POS, ID, REF, ALT and FILTER
// of an earlier record are dropped. Read does not decompress; open the file
// with covplot.Open for that.
func Read(r io.Reader) (Calls, error) {
	out := Calls{}

	br := bufio.NewReader(r)

	// Keep the header so that vcfgo sees the stream from its first byte.
	header := bytes.Buffer{}
	columns := false
	for {
		line, err := br.ReadString('\n')
		header.WriteString(line)

		if strings.HasPrefix(line, "##source=") {
			out.Caller = strings.TrimSpace(strings.TrimPrefix(line, "##source="))
		}
		if strings.HasPrefix(line, "##nanopolish") {
			out.Caller = "nanopolish"
		}

		if strings.HasPrefix(line, "#CHROM") {
			columns = true
			break
		}
		if !strings.HasPrefix(line, "##") {
			break
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return out, pfx.Err(err)
		}
	}

	if !columns {
		return out, pfx.Err(fmt.Errorf("no #CHROM header line found"))
	}

	rdr, err := vcfgo.NewReader(io.MultiReader(&header, br), true)
	if err != nil {
		return out, pfx.Err(err)
	}

	seen := make(map[key]struct{})
	for {
		v := rdr.Read()
		if v == nil {
			break
		}

		c := Call{
			Chrom:  v.Chrom(),
			Pos:    int(v.Pos),
			ID:     v.Id(),
			Ref:    v.Ref(),
			Alt:    strings.Join(v.Alt(), ","),
			Filter: v.Filter,
		}

		if _, exists := seen[c.key()]; exists {
			continue
		}
		seen[c.key()] = struct{}{}
		out.Calls = append(out.Calls, c)
	}

	if err := rdr.Error(); err != nil {
		return out, pfx.Err(err)
	}

	return out, nil
}

// Allele is the reference and alternate sequence at one position.
type Allele struct {
	Ref string
	Alt string
}

func (a Allele) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{a.Ref, a.Alt})
}

// ByPosition maps each position to its alleles, the shape the chart tooltip
// looks variants up by. When two calls share a position, the later one wins.
func (c Calls) ByPosition() map[int]Allele {
	out := make(map[int]Allele, len(c.Calls))
	for _, call := range c.Calls {
		out[call.Pos] = Allele{Ref: call.Ref, Alt: call.Alt}
	}

	return out
}

// Positions returns the distinct variant positions in ascending order.
func (c Calls) Positions() []int {
	byPos := c.ByPosition()

	out := make([]int, 0, len(byPos))
	for pos := range byPos {
		out = append(out, pos)
	}
	sort.Ints(out)

	return out
}

// Track is the per-sample variant data emitted for the chart.
type Track struct {
	Caller   string         `json:"caller,omitempty"`
	Variants map[int]Allele `json:"variants"`
}

// Track summarizes the calls for display.
func (c Calls) Track() Track {
	return Track{Caller: c.Caller, Variants: c.ByPosition()}
}
