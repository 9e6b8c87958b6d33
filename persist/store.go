// Package persist keeps small key-value state (best score, mute, tutorial)
// in a TOML file between sessions
package persist

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

const (
	appDir   = "pacific-fighter"
	fileName = "state.toml"
)

// stateFile is the on-disk layout
type stateFile struct {
	Values map[string]string `toml:"values"`
}

// FileStore is a KeyValueStore backed by one TOML file
// Every Set rewrites the file through a temp file and rename
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// DefaultPath returns the state file under the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Open loads the store at path; a missing file yields an empty store
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state %s: %w", path, err)
	}

	var f stateFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("decode state %s: %w", path, err)
	}
	for k, v := range f.Values {
		s.values[k] = v
	}
	return s, nil
}

// Path returns the backing file
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores the value and flushes the whole file
// The in-memory value is kept even when the write fails
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flush()
}

func (s *FileStore) flush() error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(stateFile{Values: s.values}); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close state: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}
