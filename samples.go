package covplot

import (
	"bufio"
	"io"
	"strings"

	"github.com/carbocation/pfx"
)

// ReadSamples reads one sample name per line. Blank lines and lines starting
// with # are skipped. Order is preserved, since each sample's position decides
// which grid it is drawn in.
func ReadSamples(r io.Reader) ([]string, error) {
	out := make([]string, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}
