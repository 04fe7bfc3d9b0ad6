package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger captures log output for assertions in tests.
type TestLogger struct {
	Logger *zerolog.Logger
	buf    *bytes.Buffer
}

// NewTestLogger creates a logger writing JSON to an in-memory buffer.
func NewTestLogger(t *testing.T) *TestLogger {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return &TestLogger{Logger: &logger, buf: buf}
}

// String returns everything logged so far.
func (l *TestLogger) String() string {
	return l.buf.String()
}

// AssertContains fails the test if the captured output does not contain s.
func (l *TestLogger) AssertContains(t *testing.T, s string) {
	t.Helper()
	if !strings.Contains(l.buf.String(), s) {
		t.Errorf("expected log output to contain %q, got: %s", s, l.buf.String())
	}
}

// Reset clears the captured output.
func (l *TestLogger) Reset() {
	l.buf.Reset()
}
