package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "")
	t.Setenv(EnvFormat, "")

	cfg := NewConfigFromEnv()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)

	t.Setenv(EnvLevel, "debug")
	t.Setenv(EnvFormat, "json")

	cfg = NewConfigFromEnv()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&Config{Level: "info", Format: "json"}, &buf)

	NewModuleLogger("notes", "service").Info("loaded", "count", 3)
	NewModuleLogger("notes", "service").Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "loaded", record["msg"])
	assert.Equal(t, "corenotes", record["service"])
	assert.Equal(t, "notes", record["module"])
	assert.Equal(t, "service", record["component"])
	assert.EqualValues(t, 3, record["count"])
}

func TestInitWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&Config{Level: "debug", Format: "text"}, &buf)

	GetLogger().Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "service=corenotes")
}
