package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// NewBufferLogger returns a debug-level slog logger backed by a buffer and the buffer for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// AssertLogged fails the test unless every want appears in the captured log output.
func AssertLogged(t *testing.T, buf *bytes.Buffer, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected log to contain %q, got %s", want, buf.String())
		}
	}
}
