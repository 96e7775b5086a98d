package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name     string
		level    string
		expected slog.Level
	}{
		{"DebugLevel", "debug", slog.LevelDebug},
		{"InfoLevel", "info", slog.LevelInfo},
		{"WarnLevel", "WARN", slog.LevelWarn},
		{"ErrorLevel", "error", slog.LevelError},
		{"DefaultToInfo", "verbose", slog.LevelInfo},
		{"EmptyToInfo", "", slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogger(tc.level, &buf)

			assert.True(t, l.Enabled(context.Background(), tc.expected))
			assert.False(t, l.Enabled(context.Background(), tc.expected-1))
		})
	}
}

func TestNewLogger_SourceAtDebug(t *testing.T) {
	var buf bytes.Buffer
	NewLogger("debug", &buf).Debug("hello")
	assert.Contains(t, buf.String(), `"source"`)

	buf.Reset()
	NewLogger("info", &buf).Info("hello")
	assert.NotContains(t, buf.String(), `"source"`)
}
