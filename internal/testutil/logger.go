// Package testutil provides shared helpers for tests: a slog logger bound to
// testing.TB and builders for ALU program text.
package testutil

import (
	"bytes"
	"log/slog"
	"testing"
)

// NewTestLogger returns a debug-level logger for extraction runs under test.
// Records go to t.Log, so they show up only on failure or with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	h := slog.NewTextHandler(logSink{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// t.Log already stamps the call site; timestamps only add noise.
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(h)
}

// logSink forwards one handler record per Write to t.Log.
type logSink struct {
	tb testing.TB
}

func (s logSink) Write(p []byte) (int, error) {
	s.tb.Helper()
	s.tb.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}
