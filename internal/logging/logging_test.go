package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestDefaultConfig_ReadsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelDebug, cfg.Level)
	assert.False(t, cfg.JSON)
	assert.NotNil(t, cfg.Output)
}

func TestSetup_JSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := Setup(Config{Level: slog.LevelWarn, JSON: true, Output: &buf})

	logger.Info("dropped")
	logger.Warn("kept", "id", "sms_1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "sms_1", line["id"])
	assert.Same(t, logger, slog.Default())
}

func TestSetup_Text(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(Config{Level: slog.LevelDebug, Output: &buf}).Debug("hello", "n", 3)
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "n=3")
}
