// Package prefs remembers a few last-used inputs between runs.
//
// Every operation is best effort: callers log failures and carry on with
// their own defaults.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store is a small string key-value store.
type Store interface {
	Load() (map[string]string, error)
	Save(values map[string]string) error
	Clear() error
}

// FileStore keeps values in a YAML file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the file. A missing file is an empty store.
func (s *FileStore) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return map[string]string{}, fmt.Errorf("read prefs: %w", err)
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return map[string]string{}, fmt.Errorf("parse prefs: %w", err)
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}

// Save replaces the file contents with values.
func (s *FileStore) Save(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// Clear removes the file.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove prefs: %w", err)
	}
	return nil
}

// MemoryStore keeps values in memory only.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Load() (map[string]string, error) {
	return copyValues(s.values), nil
}

func (s *MemoryStore) Save(values map[string]string) error {
	s.values = copyValues(values)
	return nil
}

func (s *MemoryStore) Clear() error {
	s.values = map[string]string{}
	return nil
}

func copyValues(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
