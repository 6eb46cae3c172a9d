package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each key as one file under a data directory. It is the
// local-development analogue of the browser's per-origin storage: data
// survives restarts of the mock server.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a FileStore.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the file contents for key, or nil when the file is absent.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path(key), err)
	}
	return data, nil
}

// Set overwrites the file for key with value.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path(key), err)
	}
	return nil
}
