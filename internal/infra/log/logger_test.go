package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"bookstore/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
	}

	for _, tt := range tests {
		got, err := parseLogLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, config.Log{Level: "info"}, "bookstore")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible", slog.String("key", "value"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "bookstore", entry["service"])
	assert.Equal(t, "value", entry["key"])
}

func TestNewLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, config.Log{Level: "debug", Pretty: true}, "")
	require.NoError(t, err)

	logger.Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
