package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// FileKV stores each key as <dir>/<key>.json.
type FileKV struct {
	dir string
}

// NewFileKV creates a FileKV rooted at dir. The directory is created on
// first write.
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

// Path returns the file backing key.
func (s *FileKV) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the file for key. Returns ErrNotFound if it doesn't exist.
func (s *FileKV) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Put writes one file per entry.
// Creates the directory if it doesn't exist.
func (s *FileKV) Put(entries ...Entry) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	for _, e := range entries {
		// Write a sibling temp file, then rename over the target.
		tmp := s.Path(e.Key) + ".tmp"
		if err := os.WriteFile(tmp, e.Value, 0644); err != nil {
			return err
		}
		if err := os.Rename(tmp, s.Path(e.Key)); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op.
func (s *FileKV) Close() error {
	return nil
}
