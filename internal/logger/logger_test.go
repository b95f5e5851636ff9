package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "parseLevel(%q)", in)
	}
}

func TestSetup_JSON(t *testing.T) {
	restoreDefault(t)
	buf := new(bytes.Buffer)
	Setup("debug", "json", buf)

	WithComponent("index").Debug("index built", "documents", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "index built", record["msg"])
	assert.Equal(t, "index", record["component"])
	assert.Equal(t, float64(3), record["documents"])
}

func TestSetup_FiltersBelowLevel(t *testing.T) {
	restoreDefault(t)
	buf := new(bytes.Buffer)
	Setup("warn", "text", buf)

	slog.Info("hidden")
	assert.Empty(t, buf.String())

	slog.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
