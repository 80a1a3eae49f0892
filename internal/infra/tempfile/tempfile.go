// Package tempfile tracks the on-disk byproducts of a pipeline run so they
// can all be removed on every exit path.
package tempfile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Tracker creates uniquely named temporary files and records every path it
// hands out. CleanupAll removes whatever is still tracked; it is safe to call
// more than once.
type Tracker struct {
	dir    string
	logger *slog.Logger

	mu    sync.Mutex
	paths []string
}

// NewTracker returns a Tracker writing into dir, or the OS temp directory
// when dir is empty.
func NewTracker(dir string, logger *slog.Logger) *Tracker {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Tracker{dir: dir, logger: logger}
}

// Create allocates an empty file for pattern, where a single "*" is replaced
// by a random ID, and tracks the resulting path.
func (t *Tracker) Create(pattern string) (string, error) {
	name := pattern
	if strings.Contains(pattern, "*") {
		name = strings.Replace(pattern, "*", uuid.NewString(), 1)
	}
	path := filepath.Join(t.dir, name)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	f.Close()

	t.Track(path)
	return path, nil
}

// Track adopts an externally created file so CleanupAll removes it too.
func (t *Tracker) Track(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.paths = append(t.paths, path)
}

// Remove deletes a tracked file now and stops tracking it. Removing a path
// that was already deleted is not an error.
func (t *Tracker) Remove(path string) error {
	t.mu.Lock()
	for i, p := range t.paths {
		if p == path {
			t.paths = append(t.paths[:i], t.paths[i+1:]...)
			break
		}
	}
	t.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing temp file: %w", err)
	}
	return nil
}

// CleanupAll removes every tracked file, logging and continuing on individual
// failures.
func (t *Tracker) CleanupAll() {
	t.mu.Lock()
	paths := t.paths
	t.paths = nil
	t.mu.Unlock()

	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			t.logger.Warn("removing temp file", "path", p, "error", err)
			continue
		}
		t.logger.Debug("removed temp file", "path", p)
	}
}
