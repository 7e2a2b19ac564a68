package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapter_LevelsAndFields(t *testing.T) {
	underlying := logrus.New()
	underlying.SetLevel(logrus.DebugLevel)
	var buf bytes.Buffer
	underlying.SetOutput(&buf)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithField("component", "test").Info("hello", Field{Key: "count", Value: 3})

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"component":"test"`)
	assert.Contains(t, out, `"count":3`)
}

func TestLogrusAdapter_WithErrorDoesNotMutateParent(t *testing.T) {
	underlying := logrus.New()
	var buf bytes.Buffer
	underlying.SetOutput(&buf)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithError(errors.New("boom")).Warn("failed")
	assert.Contains(t, buf.String(), `"error":"boom"`)

	buf.Reset()
	logger.Warn("clean")
	assert.NotContains(t, buf.String(), "boom")
}

func TestNewLogrusAdapter_InvalidLevelFallsBack(t *testing.T) {
	// Must not panic, and still produce a usable logger.
	logger := NewLogrusAdapter("nonsense", "text")
	require.NotNil(t, logger)
	logger.Info("still works")
}

func TestMockLogger_RecordsEntries(t *testing.T) {
	m := NewMockLogger()

	m.Info("plain")
	m.WithField("key", "value").Warn("tagged")
	m.WithError(errors.New("boom")).Error("failed")

	require.Len(t, m.Entries, 3)
	assert.True(t, m.HasEntry("INFO", "plain"))
	assert.True(t, m.HasEntry("WARN", "tagged"))
	assert.False(t, m.HasEntry("DEBUG", "plain"))

	warns := m.EntriesByLevel("WARN")
	require.Len(t, warns, 1)
	require.Len(t, warns[0].Fields, 1)
	assert.Equal(t, "key", warns[0].Fields[0].Key)

	errs := m.EntriesByLevel("ERROR")
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0].Error, "boom")
}

func TestMockLogger_ChainedFieldsAccumulate(t *testing.T) {
	m := NewMockLogger()

	m.WithField("a", 1).WithField("b", 2).Debug("chained")

	require.Len(t, m.Entries, 1)
	assert.Len(t, m.Entries[0].Fields, 2)
}
