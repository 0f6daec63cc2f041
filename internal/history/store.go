package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const fileVersion = "1.0"

// file is the on-disk layout of a history file.
type file struct {
	Version   string   `json:"version"`
	UpdatedAt string   `json:"updated_at"`
	Records   []Record `json:"records"`
}

// Store persists a History as a JSON file.
type Store struct {
	path string
}

// NewStore creates a Store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// BackupPath is where an unreadable history file is moved aside.
func (s *Store) BackupPath() string {
	return s.path + ".bak"
}

// Load reads the history file. A missing file yields an empty History; an
// unparseable one is renamed to BackupPath so the next Save cannot lose it.
func (s *Store) Load() (*History, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return New(), fmt.Errorf("failed to read history file: %w", err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		backup := s.BackupPath()
		if rerr := os.Rename(s.path, backup); rerr != nil {
			return New(), fmt.Errorf("failed to parse history file: %w (backup failed: %v)", err, rerr)
		}
		return New(), fmt.Errorf("failed to parse history file, moved to %s: %w", backup, err)
	}

	return FromRecords(f.Records), nil
}

// Save writes h to the history file, creating parent directories.
func (s *Store) Save(h *History) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(file{
		Version:   fileVersion,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Records:   h.Records(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}
