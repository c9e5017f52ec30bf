package alu

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Emitter receives one record per matched block, in block order.
type Emitter interface {
	Emit(Record) error
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(Record) error

// Emit calls f(r).
func (f EmitterFunc) Emit(r Record) error { return f(r) }

// Options configures Extract. A nil *Options uses the defaults.
type Options struct {
	Segmenter *SegmenterOptions
	Logger    *slog.Logger
}

// Stats summarizes an extraction run.
type Stats struct {
	Blocks  int
	Elapsed time.Duration
}

// Extract streams blocks from r, matches each against the template and emits
// its triple. It stops at the first mismatch and returns the *MismatchError;
// nothing is emitted for that block or any later one.
func Extract(ctx context.Context, r io.Reader, e Emitter, opts *Options) (Stats, error) {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	start := time.Now()
	var stats Stats
	seg := NewSegmenter(r, opts.Segmenter)
	for seg.Next() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		b := seg.Block()
		t, err := defaultMatcher.Match(b)
		if err != nil {
			logger.Debug("block mismatch", "index", b.Index, "line", b.StartLine(), "error", err)
			return stats, err
		}
		logger.Debug("block matched", "index", b.Index, "line", b.StartLine(), "a", t.A, "b", t.B, "c", t.C)
		if err := e.Emit(Record{Index: b.Index, Line: b.StartLine(), Triple: t}); err != nil {
			return stats, fmt.Errorf("emit block %d: %w", b.Index, err)
		}
		stats.Blocks++
	}
	if err := seg.Err(); err != nil {
		return stats, err
	}

	stats.Elapsed = time.Since(start)
	logger.Info("extraction complete", "blocks", stats.Blocks, "elapsed", stats.Elapsed)
	return stats, nil
}

// ExtractAll is Extract collecting the triples into a slice.
func ExtractAll(ctx context.Context, r io.Reader, opts *Options) ([]Triple, error) {
	var out []Triple
	_, err := Extract(ctx, r, EmitterFunc(func(rec Record) error {
		out = append(out, rec.Triple)
		return nil
	}), opts)
	if err != nil {
		return nil, err
	}
	return out, nil
}
