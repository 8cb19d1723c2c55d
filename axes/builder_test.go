package axes

import (
	"fmt"
	"testing"

	"github.com/carbocation/covplot/genefeature"
)

var flagCombos = []Flags{
	{},
	{GeneFeature: true},
	{Amplicon: true},
	{GeneFeature: true, Amplicon: true},
}

func TestBuildXAxesCount(t *testing.T) {
	for n := 0; n < 5; n++ {
		samples := make([]string, n)
		for i := range samples {
			samples[i] = fmt.Sprintf("S%d", i)
		}

		for _, flags := range flagCombos {
			got := BuildXAxes(samples, 29903, flags)

			want := n
			if flags.Extra() {
				want = n + 1
			}
			if len(got) != want {
				t.Fatalf("%d samples, flags %+v: got %d axes, expected %d", n, flags, len(got), want)
			}

			for i, a := range got {
				if a.GridIndex != i {
					t.Errorf("axis %d has grid index %d", i, a.GridIndex)
				}
				if a.Kind != KindValue || a.Min != 1 || a.Max != 29903 {
					t.Errorf("axis %d: unexpected %+v", i, a)
				}
				if a.AxisLabel == nil || a.AxisLabel.Interval != "auto" {
					t.Errorf("axis %d: expected automatic label interval", i)
				}
			}
		}
	}
}

func TestBuildXAxesScenarios(t *testing.T) {
	got := BuildXAxesFromStrings([]string{"A", "B"}, 100, "False", "False")
	if len(got) != 2 {
		t.Fatalf("Expected 2 axes, got %d", len(got))
	}
	for i, a := range got {
		if a.GridIndex != i || a.Min != 1 || a.Max != 100 {
			t.Errorf("Mismatch at %d: %+v", i, a)
		}
	}

	got = BuildXAxesFromStrings([]string{"A", "B"}, 100, "True", "False")
	if len(got) != 3 {
		t.Fatalf("Expected 3 axes, got %d", len(got))
	}
	if got[2].GridIndex != 2 || got[2].Min != 1 || got[2].Max != 100 {
		t.Errorf("Mismatch in extra axis: %+v", got[2])
	}
}

func TestBuildXAxesEmpty(t *testing.T) {
	if got := BuildXAxes(nil, 100, Flags{}); len(got) != 0 {
		t.Errorf("Expected no axes, got %d", len(got))
	}

	got := BuildXAxes(nil, 100, Flags{Amplicon: true})
	if len(got) != 1 || got[0].GridIndex != 0 {
		t.Errorf("Expected a single extra axis at grid 0, got %+v", got)
	}
}

func TestBuildYAxesPerSample(t *testing.T) {
	samples := []string{"S1", "S2", "S3"}
	props := genefeature.DefaultProperties()

	for _, scale := range []string{"log", "value", "linear", ""} {
		for _, flags := range flagCombos {
			got := BuildYAxes(samples, ParseScale(scale), 500, flags, props)

			for i, sample := range samples {
				a := got[i]
				if a.Name != sample {
					t.Errorf("axis %d named %q, expected %q", i, a.Name, sample)
				}
				if a.GridIndex != i || a.Max != 500 || a.NameLocation != "end" {
					t.Errorf("axis %d: unexpected %+v", i, a)
				}
				if a.NameTextStyle == nil || a.NameTextStyle.FontWeight != "bolder" || a.NameTextStyle.FontStyle != "normal" {
					t.Errorf("axis %d: unexpected name style", i)
				}
				if a.MinorSplitLine == nil || !a.MinorSplitLine.Show {
					t.Errorf("axis %d: expected minor split lines", i)
				}

				if scale == "log" {
					if a.Kind != KindLog || a.Min != 1 {
						t.Errorf("log axis %d: kind %v min %v", i, a.Kind, a.Min)
					}
				} else if a.Kind != KindValue || a.Min != 0 {
					t.Errorf("%q axis %d: kind %v min %v", scale, i, a.Kind, a.Min)
				}
			}
		}
	}
}

func TestBuildYAxesScenarios(t *testing.T) {
	props := genefeature.DefaultProperties()

	got := BuildYAxesFromStrings([]string{"S1"}, "log", 50, "False", "False", props)
	if len(got) != 1 {
		t.Fatalf("Expected 1 axis, got %d", len(got))
	}
	if got[0].Name != "S1" || got[0].Min != 1 || got[0].Max != 50 {
		t.Errorf("Mismatch: %+v", got[0])
	}

	props.MaxGridHeight = 120
	got = BuildYAxesFromStrings([]string{"S1"}, "value", 50, "False", "True", props)
	if len(got) != 2 {
		t.Fatalf("Expected 2 axes, got %d", len(got))
	}
	spacer := got[1]
	if spacer.GridIndex != 1 || spacer.Show() || spacer.Max != 120 || spacer.Kind != KindSpacer {
		t.Errorf("Mismatch in spacer: %+v", spacer)
	}
}

func TestBuildReturnsFreshSlices(t *testing.T) {
	samples := []string{"A"}
	first := BuildXAxes(samples, 10, Flags{})
	first[0].Max = 99

	if second := BuildXAxes(samples, 10, Flags{}); second[0].Max != 10 {
		t.Errorf("Calls share state: %+v", second[0])
	}
}

func TestParseFlag(t *testing.T) {
	for in, want := range map[string]bool{
		"True":  true,
		"true":  false,
		"TRUE":  false,
		"False": false,
		"":      false,
		"1":     false,
		" True": false,
	} {
		if got := ParseFlag(in); got != want {
			t.Errorf("ParseFlag(%q) = %v, expected %v", in, got, want)
		}
	}
}
