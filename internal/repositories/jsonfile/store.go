// Package jsonfile implements the repository interfaces over the flat JSON
// files that previous runs, the upload extractor and the web frontend all
// share. Writes are whole-file rewrites; the tool is single-writer by
// convention (see the merge semantics in result_repository.go).
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store groups the data directories every file-backed repository needs.
type Store struct {
	BetsDir    string
	DrawsDir   string
	ResultsDir string
}

// NewStore creates a Store rooted at the given directories.
func NewStore(betsDir, drawsDir, resultsDir string) *Store {
	return &Store{BetsDir: betsDir, DrawsDir: drawsDir, ResultsDir: resultsDir}
}

// readJSON decodes a JSON file into out. Returns os.ErrNotExist (wrapped)
// when the file is absent so callers can map that to "empty".
func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// writeJSON writes v as indented JSON, creating the parent directory if
// needed. Plain truncate-and-write: crash atomicity is explicitly out of
// scope for this batch, single-writer tool.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func notExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
