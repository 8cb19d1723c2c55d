// Package genefeature configures and lays out the gene feature track that is
// drawn in the auxiliary grid beneath the per-sample coverage grids.
package genefeature

import (
	"encoding/json"
	"log"
	"os"

	"github.com/carbocation/covplot"
	"github.com/carbocation/pfx"
)

// Properties sizes the gene feature track. Levels and heights are in the
// units of the auxiliary grid's y axis, which spans [0, MaxGridHeight].
type Properties struct {
	MaxGridHeight    float64 `json:"max_grid_height"`
	RecItemsHeight   float64 `json:"rec_items_height"`
	PlusStrandLevel  float64 `json:"plus_strand_level"`
	MinusStrandLevel float64 `json:"minus_strand_level"`
	GridHeight       string  `json:"grid_height"`
}

func DefaultProperties() Properties {
	return Properties{
		MaxGridHeight:    80,
		RecItemsHeight:   12,
		PlusStrandLevel:  0,
		MinusStrandLevel: 55,
		GridHeight:       "15%",
	}
}

// BumpedLevel is the level that a feature is moved to when it overlaps its
// predecessor on a strand whose base level is base.
func (p Properties) BumpedLevel(base float64) float64 {
	return base + p.RecItemsHeight + 3
}

// LoadProperties reads a JSON file whose keys override the defaults. Keys that
// are absent keep their default values.
func LoadProperties(path string) (Properties, error) {
	out := DefaultProperties()

	f, err := os.Open(covplot.ExpandHome(path))
	if err != nil {
		return out, pfx.Err(err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&out); err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
		}

		return DefaultProperties(), pfx.Err(err)
	}

	return out, nil
}
