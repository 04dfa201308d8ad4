package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText_Levels(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewText(buf, slog.LevelDebug)

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "seats", 63)
	logger.Warn("warn message", "format", "pdf")
	logger.Error("error message", "error", "disk full")

	output := buf.String()
	assert.Contains(t, output, "level=DEBUG")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "seats=63")
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "format=pdf")
	assert.Contains(t, output, `error="disk full"`)
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewText(buf, slog.LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
}

func TestSlogLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewText(buf, slog.LevelInfo).With("run", "abc")

	logger.Info("started")
	assert.Contains(t, buf.String(), "run=abc")
}

func TestNopLogger(t *testing.T) {
	var logger Logger = Nop()

	require.NotPanics(t, func() {
		logger.Debug("test message", "key", "value")
		logger.Info("", nil)
		logger.Warn("message", "single")
		logger.Error("message", "k1", "v1", "k2", "v2")
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
