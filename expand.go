package covplot

import (
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandHome expands ~ to the current user's home directory, where
// appropriate. Paths like "/something/~/something" are left alone.
func ExpandHome(path string) string {
	usr, err := user.Current()
	if err != nil {
		return path
	}

	if path == "~" {
		return usr.HomeDir
	} else if strings.HasPrefix(path, "~/") {
		return filepath.Join(usr.HomeDir, path[2:])
	}

	return path
}
