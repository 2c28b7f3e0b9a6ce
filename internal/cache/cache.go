// Package cache is the device-local snapshot store: a key-scoped mapping
// from a user-scope identifier to an opaque serialized state snapshot. It is
// read once at startup and rewritten on every mutation.
package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type Store struct {
	dir string
}

// Open prepares dir (creating it if missing) as the snapshot directory.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("cache dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Key derives the scoped storage key. Distinct scopes must never collide or
// see each other's snapshots.
func Key(base, scope string) string {
	return base + "_" + scope
}

// Get returns the snapshot stored under key, or ok=false if none exists.
func (s *Store) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache read: %w", err)
	}
	return data, true, nil
}

// Set writes the snapshot under key. The write goes through a temp file and
// rename so a crash never leaves a half-written snapshot behind.
func (s *Store) Set(key string, data []byte) error {
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("cache write: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("cache rename: %w", err)
	}
	return nil
}

// Delete removes the snapshot under key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
