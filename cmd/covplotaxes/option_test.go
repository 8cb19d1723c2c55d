package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/carbocation/covplot/axes"
	"github.com/carbocation/covplot/coverage"
	"github.com/carbocation/covplot/genefeature"
	"github.com/carbocation/covplot/variant"
)

func TestNewOption(t *testing.T) {
	in := optionInput{
		Samples: []string{"S1", "S2"},
		XMax:    29903,
		Scale:   axes.ScaleLog,
		YMax:    5000,
		Flags:   axes.ParseFlags("True", "True"),
		Props:   genefeature.DefaultProperties(),
		Features: []genefeature.Feature{
			{Name: "ORF1ab", Type: "gene", Start: 266, End: 21555, Strand: 1},
		},
		Amplicons: map[string][]coverage.Amplicon{
			"S2": {{Reference: "MN908947.3", Start: 30, End: 410, Name: "nCoV-2019_1", Depth: 10}},
		},
	}

	opt, err := newOption(in)
	if err != nil {
		t.Fatal(err)
	}

	if len(opt.XAxis) != 3 || len(opt.YAxis) != 3 {
		t.Fatalf("Expected 3 x and y axes, got %d and %d", len(opt.XAxis), len(opt.YAxis))
	}
	if opt.YAxis[2].Show() || opt.YAxis[2].Max != 80 {
		t.Errorf("Unexpected spacer %+v", opt.YAxis[2])
	}
	if len(opt.GeneFeature) != 1 || len(opt.Amplicons["S2"]) != 1 || opt.GridHeight != "15%" {
		t.Errorf("Unexpected tracks: %+v", opt)
	}

	if _, err := json.Marshal(opt); err != nil {
		t.Error(err)
	}
}

func TestNewOptionWithoutTracks(t *testing.T) {
	in := optionInput{
		Samples:  []string{"S1"},
		XMax:     100,
		Scale:    axes.ParseScale("value"),
		YMax:     50,
		Flags:    axes.ParseFlags("False", "yes"),
		Props:    genefeature.DefaultProperties(),
		Features: []genefeature.Feature{{Name: "S", Type: "gene", Start: 1, End: 10, Strand: 1}},
	}

	opt, err := newOption(in)
	if err != nil {
		t.Fatal(err)
	}

	if len(opt.XAxis) != 1 || len(opt.YAxis) != 1 {
		t.Errorf("Expected a single grid, got %d and %d axes", len(opt.XAxis), len(opt.YAxis))
	}
	if opt.GeneFeature != nil || opt.GridHeight != "" {
		t.Errorf("Unexpected tracks: %+v", opt)
	}
}

func TestNewOptionVariants(t *testing.T) {
	calls := variant.Calls{
		Caller: "iVar",
		Calls: []variant.Call{
			{Chrom: "MN908947.3", Pos: 241, Ref: "C", Alt: "T", Filter: "PASS"},
			{Chrom: "MN908947.3", Pos: 23403, Ref: "A", Alt: "G", Filter: "PASS"},
		},
	}

	for _, v := range []struct {
		name     string
		variants map[string]variant.Calls
		wantErr  bool
		wantJSON string
	}{
		{"none", nil, false, ""},
		{"one sample", map[string]variant.Calls{"S1": calls}, false, `{"S1":{"caller":"iVar","variants":{"23403":["A","G"],"241":["C","T"]}}}`},
		{"empty calls", map[string]variant.Calls{"S2": {}}, false, `{"S2":{"variants":{}}}`},
		{"unknown sample", map[string]variant.Calls{"S9": calls}, true, ""},
	} {
		opt, err := newOption(optionInput{
			Samples:  []string{"S1", "S2"},
			XMax:     29903,
			Scale:    axes.ScaleValue,
			YMax:     100,
			Props:    genefeature.DefaultProperties(),
			Variants: v.variants,
		})
		if (err != nil) != v.wantErr {
			t.Fatalf("%s: unexpected error state: %v", v.name, err)
		}
		if v.wantErr {
			continue
		}

		if v.wantJSON == "" {
			if opt.Variants != nil {
				t.Errorf("%s: expected no variants, got %v", v.name, opt.Variants)
			}
			continue
		}

		b, err := json.Marshal(opt.Variants)
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != v.wantJSON {
			t.Errorf("%s:\nGot:      %s\nExpected: %s", v.name, b, v.wantJSON)
		}
	}
}

func TestNewOptionAmpliconsForUnknownSample(t *testing.T) {
	_, err := newOption(optionInput{
		Samples: []string{"S1"},
		Flags:   axes.Flags{Amplicon: true},
		Props:   genefeature.DefaultProperties(),
		Amplicons: map[string][]coverage.Amplicon{
			"S2": {{Name: "nCoV-2019_1"}},
		},
	})
	if err == nil {
		t.Error("Expected an error for amplicons of an unlisted sample")
	}
}

func TestPreviewFileName(t *testing.T) {
	for in, want := range map[string]string{
		"S1":           "S1.png",
		"../../etc/S1": ".._.._etc_S1.png",
		"runs/2022/S1": "runs_2022_S1.png",
		`C:\\tmp\\S1`:  "C:__tmp__S1.png",
		"..":           "_...png",
		"":             "_.png",
	} {
		got := previewFileName(in)
		if got != want {
			t.Errorf("previewFileName(%q) = %q, expected %q", in, got, want)
		}
		if filepath.Base(got) != got {
			t.Errorf("previewFileName(%q) = %q escapes its directory", in, got)
		}
	}
}
