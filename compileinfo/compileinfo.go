// Package compileinfo reports how the running binary was built. The coverage
// plot tools stamp it into the documents they write so that a chart can be
// traced back to the code that produced it.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
)

type CompileInfo struct {
	Path       string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Path == "" {
		return "build information unavailable"
	}

	b := strings.Builder{}
	fmt.Fprintf(&b, "%s %s built with %s", c.Path, c.Version, c.GoVersion)
	if c.Commit != "" {
		fmt.Fprintf(&b, " at commit %s (%s)", c.Commit, c.CommitTime)
	}
	if c.Modified {
		b.WriteString(", with uncommitted changes")
	}

	return b.String()
}

func Get() CompileInfo {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}

	return fromBuildInfo(z)
}

func fromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{
		Path:      z.Path,
		Version:   z.Main.Version,
		GoVersion: z.GoVersion,
	}

	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func PrintToStdErr() {
	fmt.Fprintln(os.Stderr, Get())
}
