package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/leximind/internal/config"
)

func TestNewLogger_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should set the returned logger as slog default")
	}
}

func TestNewLoggerTo_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, config.LogConfig{Level: "info", Format: "json"})
	logger.Info("lookup finished", slog.String("word", "ephemeral"))

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("JSON handler should produce valid JSON: %v", err)
	}
	if m["word"] != "ephemeral" {
		t.Errorf("word attr = %v", m["word"])
	}
	if _, ok := m["source"]; ok {
		t.Error("json format should not include source")
	}
}

func TestNewLoggerTo_TextDebugAddsSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, config.LogConfig{Level: "debug", Format: "text"})
	logger.Debug("source test")

	if !strings.Contains(buf.String(), "source=") {
		t.Error("text format at debug level should include source information")
	}
}

func TestNewLoggerTo_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    string
		wantSlog slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := NewLoggerTo(&buf, config.LogConfig{Level: tt.level, Format: "text"})

			logger.Log(context.TODO(), tt.wantSlog, "should appear")
			if buf.Len() == 0 {
				t.Errorf("expected log output at level %v", tt.wantSlog)
			}

			buf.Reset()
			logger.Log(context.TODO(), tt.wantSlog-1, "should be suppressed")
			if buf.Len() != 0 {
				t.Errorf("level %v should suppress level %v, got: %s", tt.wantSlog, tt.wantSlog-1, buf.String())
			}
		})
	}
}
