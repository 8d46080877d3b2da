// Package observability configures process-wide structured logging.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Instrument installs the default slog logger. Logs go to w, never stdout:
// stdout carries command output and the MCP stdio protocol.
func Instrument(w io.Writer, level slog.Level, logFormat string) error {
	handler, err := newHandler(w, level, logFormat)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(newTraceContextHandler(handler)))

	return nil
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unsupported log level %q (expected: debug, info, warn, error)", s)
	}
	return level, nil
}

func newHandler(w io.Writer, level slog.Level, logFormat string) (slog.Handler, error) {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(logFormat) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q (expected: json, text)", logFormat)
	}

	return handler, nil
}
