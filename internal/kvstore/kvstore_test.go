package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/YashG504/expense-tracker/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := OpenFileStore(path, logging.NewMockLogger())
	require.NoError(t, err)

	_, ok := s.Get(KeyBudget)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeyBudget, "500"))
	require.NoError(t, s.Set(KeyDarkMode, "true"))

	// A fresh store over the same file sees the values back.
	reopened, err := OpenFileStore(path, logging.NewMockLogger())
	require.NoError(t, err)

	value, ok := reopened.Get(KeyBudget)
	assert.True(t, ok)
	assert.Equal(t, "500", value)
	value, ok = reopened.Get(KeyDarkMode)
	assert.True(t, ok)
	assert.Equal(t, "true", value)
}

func TestFileStore_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := OpenFileStore(path, logging.NewMockLogger())
	require.NoError(t, err)

	require.NoError(t, s.Set("key", "value"))
	require.NoError(t, s.Delete("key"))
	_, ok := s.Get("key")
	assert.False(t, ok)

	assert.NoError(t, s.Delete("absent"))
}

func TestFileStore_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "state.json")

	s, err := OpenFileStore(path, logging.NewMockLogger())
	require.NoError(t, err)
	require.NoError(t, s.Set("key", "value"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenFileStore_MissingFileStartsEmpty(t *testing.T) {
	logger := logging.NewMockLogger()
	s, err := OpenFileStore(filepath.Join(t.TempDir(), "absent.json"), logger)
	require.NoError(t, err)

	_, ok := s.Get("anything")
	assert.False(t, ok)
	assert.Empty(t, logger.EntriesByLevel("WARN"))
}

func TestOpenFileStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	logger := logging.NewMockLogger()
	s, err := OpenFileStore(path, logger)
	require.NoError(t, err)

	_, ok := s.Get("anything")
	assert.False(t, ok)
	assert.NotEmpty(t, logger.EntriesByLevel("WARN"))
}

func TestOpenFileStore_EmptyPath(t *testing.T) {
	_, err := OpenFileStore("", logging.NewMockLogger())
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "state.json"), DefaultPath("data"))

	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, filepath.Join("/home/tester", ".expense-tracker", "state.json"), DefaultPath(""))
}
