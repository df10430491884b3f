// Package docstore implements the single-file JSON document store backing
// all application state. The whole snapshot is loaded at startup and
// rewritten wholesale on every mutation; there are no partial writes.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
)

// ErrCorruptFile is returned by Open when the backing file exists but is
// not well-formed JSON. Treated as fatal at startup rather than silently
// discarding data.
var ErrCorruptFile = errors.New("document store file is corrupt")

// Store owns the in-memory snapshot and its on-disk mirror.
//
// Every mutation goes through Update, which holds the write lock across
// both the mutation and the flush. That single critical section is what
// serializes concurrent writers and closes the lost-update window a
// flush-after-mutate design would otherwise have.
type Store struct {
	path    string
	mu      sync.RWMutex
	data    *Snapshot
	retrier retry.Retry[struct{}]
}

// Open loads the snapshot from path, or initializes the default shape
// when the file does not exist yet. The parent directory is created if
// needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Store{
		path: path,
		// A flush failure is retried once after a short pause before it is
		// surfaced to the request that triggered it.
		retrier: retry.New[struct{}](retry.Config{
			MaxAttempts:   2,
			InitialDelay:  50 * time.Millisecond,
			MaxDelay:      time.Second,
			Multiplier:    2.0,
			BackoffPolicy: retry.BackoffExponential,
		}),
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.data = DefaultSnapshot()
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read document store: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptFile, path, err)
	}
	snap.normalize()
	s.data = &snap
	return s, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// View runs fn with read access to the snapshot. fn must not retain or
// mutate the snapshot.
func (s *Store) View(fn func(*Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

// Update runs fn with write access to the snapshot and, if fn succeeds,
// flushes the whole snapshot to disk before releasing the write lock.
// When fn returns an error nothing is written and the error is returned
// unchanged.
//
// A flush failure is returned to the caller; the in-memory mutation is
// not rolled back, so the next successful flush still carries it.
func (s *Store) Update(ctx context.Context, fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.data); err != nil {
		return err
	}
	return s.flushLocked(ctx)
}

// flushLocked serializes the snapshot and atomically replaces the backing
// file. Callers must hold the write lock.
func (s *Store) flushLocked(ctx context.Context) error {
	_, err := s.retrier.Do(ctx, func(context.Context) (struct{}, error) {
		return struct{}{}, s.writeFile()
	})
	if err != nil {
		return fmt.Errorf("flush document store: %w", err)
	}
	return nil
}

// writeFile writes the snapshot to a temporary file in the same directory
// and renames it over the target, so a crash mid-write leaves the old
// content intact.
func (s *Store) writeFile() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
