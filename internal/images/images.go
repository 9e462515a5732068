// Package images stores uploaded asset photos. The core never inspects
// image bytes; files are copied as-is and referenced by local path.
package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Save copies the file at src into dir under its original base name and
// returns the stored path. An empty src means no image and returns "".
func Save(dir, src string) (string, error) {
	if src == "" {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	dest := filepath.Join(dir, filepath.Base(src))
	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return dest, nil
}
