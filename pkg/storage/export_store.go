package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ExportStore keeps rendered register exports on local disk. Files live flat
// under the root directory and are named by export job id, so a sweep can
// reason about age without tracking state elsewhere.
type ExportStore struct {
	root string
}

// NewExportStore creates the root directory if needed and returns the store.
func NewExportStore(root string) (*ExportStore, error) {
	if root == "" {
		root = "./exports"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create export root: %w", err)
	}
	return &ExportStore{root: root}, nil
}

// Save writes a rendered export. The name is flattened to its base so a
// crafted job id cannot escape the root.
func (s *ExportStore) Save(name string, data []byte) error {
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("write export %s: %w", name, err)
	}
	return nil
}

// Open returns a read-only handle for a stored export.
func (s *ExportStore) Open(name string) (*os.File, error) {
	file, err := os.Open(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("open export %s: %w", name, err)
	}
	return file, nil
}

// Remove deletes a stored export. Missing files are not an error.
func (s *ExportStore) Remove(name string) error {
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove export %s: %w", name, err)
	}
	return nil
}

// Sweep deletes exports whose modification time is older than maxAge and
// returns how many were removed.
func (s *ExportStore) Sweep(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return 0, fmt.Errorf("scan export root: %w", err)
	}
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return removed, fmt.Errorf("stat export %s: %w", entry.Name(), err)
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := s.Remove(entry.Name()); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (s *ExportStore) path(name string) string {
	return filepath.Join(s.root, filepath.Base(name))
}
