package logging

import (
	"fmt"
	"sync"
)

// MockLogger is a mock implementation of the Logger interface for testing.
// Loggers derived through WithField/WithFields/WithError record into the same
// entry list as their parent, and recording is safe for concurrent use.
type MockLogger struct {
	sink          *mockSink
	pendingError  error
	pendingFields []Field
}

type mockSink struct {
	mu      sync.Mutex
	entries []LogEntry
}

// LogEntry represents a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// NewMockLogger returns an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{sink: &mockSink{}}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	if m.sink == nil {
		m.sink = &mockSink{}
	}
	all := make([]Field, 0, len(m.pendingFields)+len(fields))
	all = append(all, m.pendingFields...)
	all = append(all, fields...)

	m.sink.mu.Lock()
	defer m.sink.mu.Unlock()
	m.sink.entries = append(m.sink.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  all,
		Error:   m.pendingError,
	})
}

// Debug logs a debug-level message with optional fields.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }

// Info logs an info-level message with optional fields.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("INFO", msg, fields) }

// Warn logs a warning-level message with optional fields.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("WARN", msg, fields) }

// Error logs an error-level message with optional fields.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatal records a fatal-level message. The mock does not exit.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

// Fatalf records a formatted fatal-level message. The mock does not exit.
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(msg, args...), nil)
}

// WithError returns a new logger with an error field attached.
func (m *MockLogger) WithError(err error) Logger {
	child := m.child()
	child.pendingError = err
	return child
}

// WithField returns a new logger with a single field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a new logger with multiple fields attached.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	child := m.child()
	child.pendingFields = append(child.pendingFields, fields...)
	return child
}

func (m *MockLogger) child() *MockLogger {
	if m.sink == nil {
		m.sink = &mockSink{}
	}
	fields := make([]Field, len(m.pendingFields))
	copy(fields, m.pendingFields)
	return &MockLogger{sink: m.sink, pendingError: m.pendingError, pendingFields: fields}
}

// GetEntries returns a copy of all captured log entries.
func (m *MockLogger) GetEntries() []LogEntry {
	if m.sink == nil {
		return nil
	}
	m.sink.mu.Lock()
	defer m.sink.mu.Unlock()
	out := make([]LogEntry, len(m.sink.entries))
	copy(out, m.sink.entries)
	return out
}

// GetEntriesByLevel returns all log entries of a specific level.
func (m *MockLogger) GetEntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range m.GetEntries() {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Clear removes all captured log entries.
func (m *MockLogger) Clear() {
	if m.sink == nil {
		return
	}
	m.sink.mu.Lock()
	defer m.sink.mu.Unlock()
	m.sink.entries = nil
}

// HasEntry checks if a log entry with the given level and message exists.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.GetEntries() {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}

// FieldValue returns the value of key on entry, and whether it was present.
func (e LogEntry) FieldValue(key string) (interface{}, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}
