package compileinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	z := &debug.BuildInfo{
		GoVersion: "go1.21.0",
		Path:      "github.com/carbocation/covplot/cmd/covplotaxes",
		Main:      debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2022-06-01T00:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	c := fromBuildInfo(z)
	if c.Commit != "abc123" || c.CommitTime != "2022-06-01T00:00:00Z" || !c.Modified || c.GoVersion != "go1.21.0" {
		t.Errorf("Mismatch: %+v", c)
	}

	s := c.String()
	for _, want := range []string{"covplotaxes", "abc123", "uncommitted"} {
		if !strings.Contains(s, want) {
			t.Errorf("%q does not mention %q", s, want)
		}
	}
}

func TestEmptyString(t *testing.T) {
	if s := (CompileInfo{}).String(); s != "build information unavailable" {
		t.Errorf("Unexpected %q", s)
	}
}
