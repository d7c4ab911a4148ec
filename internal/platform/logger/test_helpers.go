package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// TestLogBuffer captures JSON log output in tests. It is safe for use from
// multiple goroutines, so loggers handed to concurrent code can share it.
type TestLogBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write implements io.Writer.
func (b *TestLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything logged so far.
func (b *TestLogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// GetLogEntries decodes the captured output as a stream of JSON log
// entries, one object per line.
func (b *TestLogBuffer) GetLogEntries() ([]map[string]interface{}, error) {
	decoder := json.NewDecoder(strings.NewReader(b.String()))

	var entries []map[string]interface{}
	for decoder.More() {
		var entry map[string]interface{}
		if err := decoder.Decode(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetTestLogger returns a debug-level JSON logger writing into a fresh
// TestLogBuffer, so tests can assert on what a component logged.
func GetTestLogger(t *testing.T) (*slog.Logger, *TestLogBuffer) {
	t.Helper()

	logBuf := &TestLogBuffer{}
	handler := slog.NewJSONHandler(logBuf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return slog.New(handler), logBuf
}

// AssertLogContains fails the test when the captured output does not
// contain the given substring.
func AssertLogContains(t *testing.T, logBuf *TestLogBuffer, content string) {
	t.Helper()

	logs := logBuf.String()
	if !strings.Contains(logs, content) {
		t.Errorf("log output missing %q\nlogs:\n%s", content, logs)
	}
}

// AssertLogField fails the test when no captured entry carries the field
// with the expected value.
func AssertLogField(t *testing.T, logBuf *TestLogBuffer, field string, expected interface{}) {
	t.Helper()

	entries, err := logBuf.GetLogEntries()
	if err != nil {
		t.Fatalf("parsing log entries: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("no log entries captured")
	}

	for _, entry := range entries {
		if value, ok := entry[field]; ok && value == expected {
			return
		}
	}

	t.Errorf("Expected log entries to contain field %q with value %v, but it wasn't found",
		field, expected)
}
