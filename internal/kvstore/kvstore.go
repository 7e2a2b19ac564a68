// Package kvstore provides durable string storage keyed by name, the local
// persistence collaborator of the expense tracker. Content is opaque to the
// store; callers serialize their own values.
package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/YashG504/expense-tracker/internal/logging"
)

// Well-known keys used by the application.
const (
	KeyExpenses = "expenses"
	KeyBudget   = "budget"
	KeyDarkMode = "darkMode"
)

// Store is string storage keyed by name. Get reports whether the key was
// present; Set persists immediately.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore keeps all keys in a single JSON object file. The full map is
// loaded once at open and rewritten on every Set, mirroring the
// read-at-startup, write-after-every-mutation lifecycle of a browser local
// store.
type FileStore struct {
	path   string
	values map[string]string
	logger logging.Logger
}

// OpenFileStore loads the store file at path, creating parent directories as
// needed. A missing file yields an empty store; a corrupt file is logged and
// also yields an empty store rather than an error, so a damaged state file
// never blocks startup.
func OpenFileStore(path string, logger logging.Logger) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("kvstore: empty path")
	}

	s := &FileStore{
		path:   path,
		values: map[string]string{},
		logger: logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).WithField("path", path).
				Warn("Failed to read state file, starting empty")
		}
		return s, nil
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		logger.WithError(err).WithField("path", path).
			Warn("State file is corrupt, starting empty")
		s.values = map[string]string{}
	}
	return s, nil
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Set stores value under key and rewrites the backing file.
func (s *FileStore) Set(key, value string) error {
	s.values[key] = value
	return s.flush()
}

// Delete removes key and rewrites the backing file. Deleting an absent key is
// not an error.
func (s *FileStore) Delete(key string) error {
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flush()
}

func (s *FileStore) flush() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("error writing state file: %w", err)
	}
	return nil
}

// DefaultPath resolves the state file location. An explicit dataDir wins;
// otherwise the store lives under the user's home config directory, falling
// back to the working directory when no home is available.
func DefaultPath(dataDir string) string {
	const filename = "state.json"
	if dataDir != "" {
		return filepath.Join(dataDir, filename)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filename
	}
	return filepath.Join(homeDir, ".expense-tracker", filename)
}
