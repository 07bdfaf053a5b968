package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	return result
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test-service"}, &buf)

	log.Info().Msg("test message")

	result := decodeLine(t, &buf)
	assert.Equal(t, "info", result["level"])
	assert.Equal(t, "test message", result["message"])
	assert.Equal(t, "test-service", result["service"])
	assert.NotEmpty(t, result["time"])
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console"}, &buf)

	log.Info().Msg("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), "INF")
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		write       func(*Logger)
		shouldLog   bool
	}{
		{"debug logged at debug level", "debug", func(l *Logger) { l.Debug().Msg("x") }, true},
		{"debug dropped at info level", "info", func(l *Logger) { l.Debug().Msg("x") }, false},
		{"warn logged at info level", "info", func(l *Logger) { l.Warn().Msg("x") }, true},
		{"info dropped at error level", "error", func(l *Logger) { l.Info().Msg("x") }, false},
		{"invalid level falls back to info", "loud", func(l *Logger) { l.Info().Msg("x") }, true},
		{"empty level falls back to info", "", func(l *Logger) { l.Debug().Msg("x") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(NewWithOutput(Config{Level: tt.configLevel, Format: "json"}, &buf))
			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestNewLogger_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", EnableCaller: true}, &buf)

	log.Info().Msg("with caller")

	assert.Contains(t, decodeLine(t, &buf)["caller"], "logger_test.go")
}

func TestLogger_ContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithOutput(DefaultConfig(), &buf)

	base.WithContext("request_id", "req-123").WithComponent("upstream").Info().Msg("tagged")

	result := decodeLine(t, &buf)
	assert.Equal(t, "req-123", result["request_id"])
	assert.Equal(t, "upstream", result["component"])
	assert.Equal(t, "flight-insights", result["service"])
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() {
		log.Info().Str("route", "GRU-PTY").Msg("discarded")
	})
}
