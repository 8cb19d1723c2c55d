// Package covplot holds the input plumbing shared by the coverage plot tools:
// opening local or Google Storage files, transparent decompression and
// delimiter detection.
package covplot

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// IsGoogleStoragePath reports whether path names a gs:// object.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, "gs://")
}

// SplitGoogleStoragePath splits gs://bucket/some/object into its bucket and
// object name.
func SplitGoogleStoragePath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// readCloser pairs a (possibly decompressing) reader with the Close of the
// underlying source.
type readCloser struct {
	io.Reader
	close func() error
}

func (c *readCloser) Close() error {
	return c.close()
}

// Open opens a local path or, when client is non-nil, a gs:// path. Compressed
// content is decompressed transparently. Closing the result closes the
// underlying file or object reader.
func Open(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	var src io.ReadCloser

	if IsGoogleStoragePath(path) {
		if client == nil {
			return nil, pfx.Err(fmt.Errorf("%s: a Google Storage client is required", path))
		}

		bucketName, objectName, err := SplitGoogleStoragePath(path)
		if err != nil {
			return nil, pfx.Err(err)
		}

		rdr, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
		}
		src = rdr
	} else {
		f, err := os.Open(ExpandHome(path))
		if err != nil {
			return nil, pfx.Err(err)
		}
		src = f
	}

	r, err := MaybeDecompress(src)
	if err != nil {
		src.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return &readCloser{Reader: r, close: src.Close}, nil
}

// NeedsGoogleStorage reports whether any of the paths is a gs:// path, so that
// callers only construct a storage client when one will be used.
func NeedsGoogleStorage(paths ...string) bool {
	for _, p := range paths {
		if IsGoogleStoragePath(p) {
			return true
		}
	}

	return false
}
