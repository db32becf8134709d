package patterns

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Mohsen-data-wizard/Pdf-extractor/internal/types"
)

// Store file names inside the store directory.
const (
	learnedPatternsFile = "learned_patterns.json"
	correctionsFile     = "user_corrections.json"
	performanceLogFile  = "performance_log.json"
)

// Open loads a file-backed repository from dir, creating the directory when
// missing. A store file that fails to parse is reported through warn and
// replaced by an empty set; in-memory learning then proceeds and the next
// Save rewrites the file. Only genuine I/O failures abort the open.
func Open(dir string, warn io.Writer) (*Repository, error) {
	if warn == nil {
		warn = io.Discard
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StoreIOError{Path: dir, Op: "create", Cause: err}
	}

	r := NewRepository()
	r.dir = dir

	learned, err := loadJSONFile[map[string][]types.LearnedPattern](filepath.Join(dir, learnedPatternsFile), warn)
	if err != nil {
		return nil, err
	}
	if learned != nil {
		r.learned = learned
	}
	if r.corrections, err = loadJSONFile[[]types.Correction](filepath.Join(dir, correctionsFile), warn); err != nil {
		return nil, err
	}
	if r.sessions, err = loadJSONFile[[]types.LearningSession](filepath.Join(dir, performanceLogFile), warn); err != nil {
		return nil, err
	}
	return r, nil
}

// loadJSONFile reads and parses one store file. Missing files yield the zero
// value (empty store); unparseable files warn and also yield the zero value,
// never a partially-decoded one.
func loadJSONFile[T any](path string, warn io.Writer) (T, error) {
	var zero T

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return zero, nil
	}
	if err != nil {
		return zero, &StoreIOError{Path: path, Op: "read", Cause: err}
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		corrupt := &CorruptStoreError{Path: path, Cause: err}
		fmt.Fprintf(warn, "Warning: %v; continuing with an empty store\n", corrupt)
		return zero, nil
	}
	return v, nil
}

// Save persists the repository to its store directory. Each file is written
// to a temp file in the same directory, flushed, closed, and atomically
// renamed over the previous version, so a crash mid-write never corrupts the
// last valid store. In-memory state is untouched on failure so the caller
// can retry.
func (r *Repository) Save() error {
	if r.dir == "" {
		return nil // in-memory repository
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := writeJSONAtomic(filepath.Join(r.dir, learnedPatternsFile), r.learned); err != nil {
		return err
	}
	if err := writeJSONAtomic(filepath.Join(r.dir, correctionsFile), orEmpty(r.corrections)); err != nil {
		return err
	}
	return writeJSONAtomic(filepath.Join(r.dir, performanceLogFile), orEmpty(r.sessions))
}

// orEmpty keeps empty logs serialized as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func writeJSONAtomic(path string, v any) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &StoreIOError{Path: path, Op: "write", Cause: err}
	}
	tmpName := tmp.Name()

	// Guarantee the temp file is cleaned up on every failure path.
	fail := func(cause error) error {
		tmp.Close()
		os.Remove(tmpName)
		return &StoreIOError{Path: path, Op: "write", Cause: cause}
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StoreIOError{Path: path, Op: "write", Cause: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &StoreIOError{Path: path, Op: "rename", Cause: err}
	}
	return nil
}
