package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &out))
	return out
}

func TestLoggerWritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONTo(LevelInfo, &buf).With("service", "lineup-advisor")

	logger.Warn("persist batch failed", "week", 5, "error", errors.New("conn reset"))

	line := decodeLine(t, &buf)
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "persist batch failed", line["msg"])
	assert.Equal(t, "lineup-advisor", line["service"])
	assert.EqualValues(t, 5, line["week"])
	assert.Equal(t, "conn reset", line["error"])
}

func TestLoggerDropsBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONTo(LevelWarn, &buf)

	logger.Info("ignored")
	assert.Zero(t, buf.Len())
}

func TestLoggerContextAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONTo(LevelInfo, &buf)

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "scored week")

	line := decodeLine(t, &buf)
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", line["trace_id"])
	assert.Equal(t, "0102030405060708", line["span_id"])
}

func TestLoggerOddArgs(t *testing.T) {
	var buf bytes.Buffer
	NewJSONTo(LevelInfo, &buf).Info("odd", "dangling")

	line := decodeLine(t, &buf)
	_, ok := line["dangling"]
	assert.True(t, ok)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        LevelInfo,
		"DEBUG":   LevelDebug,
		"warning": LevelWarn,
		" error ": LevelError,
	}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("no logger")
		logger.With("k", "v").Warn("still fine")
	})
}
