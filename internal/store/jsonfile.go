// Package store implements whole-file JSON persistence. Every store is one
// flat file holding a single JSON array; mutations are full
// read-modify-rewrite cycles with no incremental writes. The design assumes
// exactly one writer process.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes one JSON array file in full.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load decodes the whole file into out. A missing or empty file is not an
// error: out is left untouched and ok is false, so callers can seed.
func (s *Store) Load(out any) (ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return true, nil
}

// Save rewrites the whole file with the indented encoding of v, creating the
// parent directory on first write. The write is not crash-atomic; the caller
// treats mutation plus persistence as one step.
func (s *Store) Save(v any) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
