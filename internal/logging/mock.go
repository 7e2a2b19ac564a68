package logging

// MockLogger captures log entries for verification in tests.
type MockLogger struct {
	Entries       []LogEntry
	pendingError  error
	pendingFields []Field
}

// NewMockLogger creates an empty mock logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// LogEntry is a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := append(m.pendingFields, fields...)
	m.Entries = append(m.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// WithError returns a new logger view with an error field attached. The entry
// slice is shared with the parent so tests can inspect a single MockLogger.
func (m *MockLogger) WithError(err error) Logger {
	return &chainedMockLogger{root: m.root(), pendingError: err, pendingFields: m.currentFields()}
}

// WithField returns a new logger view with a single field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a new logger view with multiple fields attached.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	return &chainedMockLogger{
		root:          m.root(),
		pendingError:  m.pendingError,
		pendingFields: append(m.currentFields(), fields...),
	}
}

func (m *MockLogger) root() *MockLogger      { return m }
func (m *MockLogger) currentFields() []Field { return m.pendingFields }

// HasEntry checks whether an entry with the given level and message exists.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.Entries {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}

// EntriesByLevel returns the captured entries of a given level.
func (m *MockLogger) EntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range m.Entries {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// chainedMockLogger is a derived view that records into its root MockLogger.
type chainedMockLogger struct {
	root          *MockLogger
	pendingError  error
	pendingFields []Field
}

func (c *chainedMockLogger) record(level, msg string, fields []Field) {
	allFields := append(c.pendingFields, fields...)
	c.root.Entries = append(c.root.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   c.pendingError,
	})
}

func (c *chainedMockLogger) Debug(msg string, fields ...Field) { c.record("DEBUG", msg, fields) }
func (c *chainedMockLogger) Info(msg string, fields ...Field)  { c.record("INFO", msg, fields) }
func (c *chainedMockLogger) Warn(msg string, fields ...Field)  { c.record("WARN", msg, fields) }
func (c *chainedMockLogger) Error(msg string, fields ...Field) { c.record("ERROR", msg, fields) }

func (c *chainedMockLogger) WithError(err error) Logger {
	return &chainedMockLogger{root: c.root, pendingError: err, pendingFields: c.pendingFields}
}

func (c *chainedMockLogger) WithField(key string, value interface{}) Logger {
	return c.WithFields(Field{Key: key, Value: value})
}

func (c *chainedMockLogger) WithFields(fields ...Field) Logger {
	return &chainedMockLogger{
		root:          c.root,
		pendingError:  c.pendingError,
		pendingFields: append(c.pendingFields, fields...),
	}
}
