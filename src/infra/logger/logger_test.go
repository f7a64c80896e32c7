package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidmaster/src/infra/config"
)

func TestNewWithWriter_Plain(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "info", Format: "plain"}, &buf)

	WithComponent(log, "pipeline").Info("registration recorded", "record_id", "r1")
	log.Debug("hidden")

	assert.Equal(t, "registration recorded component=pipeline record_id=r1\n", buf.String())
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "warn", Format: "json"}, &buf)

	log.Info("skipped")
	log.Warn("summary generation failed", "record_id", "r1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "summary generation failed", line["msg"])
	assert.Equal(t, "r1", line["record_id"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}

func TestNewWithWriter_PlainGroups(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "info", Format: "plain"}, &buf)

	log.WithGroup("req").With("id", "r1").Info("handled", "status", 200)
	log.Info("summary", slog.Group("gemini", "ok", true), "ok", false)

	assert.Equal(t,
		"handled req.id=r1 req.status=200\nsummary gemini.ok=true ok=false\n",
		buf.String())
}

func TestNewWithWriter_PlainEmptyGroupIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "info", Format: "plain"}, &buf)

	log.WithGroup("").Info("m", "k", "v")

	assert.Equal(t, "m k=v\n", buf.String())
}
