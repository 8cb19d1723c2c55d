package coverage

import (
	"strings"
	"testing"
)

func TestReadIntervalDepths(t *testing.T) {
	in := "MN908947.3\t0\t2\t0\n" +
		"MN908947.3\t2\t5\t31\n" +
		"MN908947.3\t6\t8\t7.5\n" +
		"MN908947.3\t8\t20\t100\n"

	got, err := ReadIntervalDepths(strings.NewReader(in), 10)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{ZeroDepth, ZeroDepth, 31, 31, 31, ZeroDepth, 7.5, 7.5, 100, 100}
	if len(got.Depths) != len(want) || len(got.Positions) != len(want) {
		t.Fatalf("Expected %d positions, got %d depths and %d positions", len(want), len(got.Depths), len(got.Positions))
	}
	for i := range want {
		if got.Depths[i] != want[i] {
			t.Errorf("position %d: depth %v, expected %v", i+1, got.Depths[i], want[i])
		}
		if got.Positions[i] != i+1 {
			t.Errorf("index %d: position %d", i, got.Positions[i])
		}
	}

	if got.Reference != "MN908947.3" {
		t.Errorf("Unexpected reference %q", got.Reference)
	}

	st, err := Summarize(got, DefaultLowDepth)
	if err != nil {
		t.Fatal(err)
	}
	if st.ZeroPositions != 3 || st.ZeroRegions != "1-2; 6-6" {
		t.Errorf("Mismatch: %+v", st)
	}
}

func TestReadIntervalDepthsErrors(t *testing.T) {
	if _, err := ReadIntervalDepths(strings.NewReader("ref\t0\t1\t5\n"), 0); err == nil {
		t.Error("Expected an error for a zero reference length")
	}
	if _, err := ReadIntervalDepths(strings.NewReader("ref\tzero\t1\t5\n"), 10); err == nil {
		t.Error("Expected an error for a non-numeric start")
	}
}
