package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewHandlerRejectsUnknownFormat(t *testing.T) {
	_, err := newHandler(&bytes.Buffer{}, slog.LevelInfo, "xml")
	assert.ErrorContains(t, err, `unsupported log format "xml"`)
}

func TestTraceContextHandlerAddsIDs(t *testing.T) {
	var buf bytes.Buffer
	inner, err := newHandler(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)
	logger := slog.New(newTraceContextHandler(inner))

	traceID, _ := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
	spanID, _ := trace.SpanIDFromHex("b7ad6b7169203331")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "embedded", "texts", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "0af7651916cd43dd8448eb211c80319c", record["trace_id"])
	assert.Equal(t, "b7ad6b7169203331", record["span_id"])
	assert.EqualValues(t, 3, record["texts"])
}

func TestTraceContextHandlerWithoutSpan(t *testing.T) {
	var buf bytes.Buffer
	inner, err := newHandler(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)
	slog.New(newTraceContextHandler(inner)).With("component", "cli").Info("plain")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, "trace_id")
	assert.Equal(t, "cli", record["component"])
}
