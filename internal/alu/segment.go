package alu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Default markers used by the segmenter.
const (
	DefaultSentinel      = "inp"
	DefaultCommentPrefix = "#"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// SegmenterOptions configures block segmentation.
// Empty fields fall back to the defaults.
type SegmenterOptions struct {
	Sentinel      string
	CommentPrefix string
}

func (o *SegmenterOptions) withDefaults() SegmenterOptions {
	out := SegmenterOptions{Sentinel: DefaultSentinel, CommentPrefix: DefaultCommentPrefix}
	if o == nil {
		return out
	}
	if o.Sentinel != "" {
		out.Sentinel = o.Sentinel
	}
	if o.CommentPrefix != "" {
		out.CommentPrefix = o.CommentPrefix
	}
	return out
}

// Segmenter splits an input stream into blocks. It reads lazily and holds at
// most one block at a time. Use it like bufio.Scanner:
//
//	seg := alu.NewSegmenter(r, nil)
//	for seg.Next() {
//		b := seg.Block()
//	}
//	if err := seg.Err(); err != nil { ... }
type Segmenter struct {
	sc      *bufio.Scanner
	opts    SegmenterOptions
	lineNo  int
	index   int
	pending []Line
	block   Block
	err     error
	done    bool
}

// NewSegmenter returns a segmenter reading from r. opts may be nil.
func NewSegmenter(r io.Reader, opts *SegmenterOptions) *Segmenter {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Segmenter{sc: sc, opts: opts.withDefaults()}
}

// Next advances to the next block. It returns false at end of input or on a
// read error; check Err afterwards.
func (s *Segmenter) Next() bool {
	if s.done {
		return false
	}
	for s.sc.Scan() {
		s.lineNo++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" || strings.HasPrefix(text, s.opts.CommentPrefix) {
			continue
		}
		line := Line{Text: text, Number: s.lineNo}
		if strings.HasPrefix(text, s.opts.Sentinel) && len(s.pending) > 0 {
			s.flush()
			s.pending = append(s.pending, line)
			return true
		}
		s.pending = append(s.pending, line)
	}
	s.done = true
	if err := s.sc.Err(); err != nil {
		s.err = fmt.Errorf("read input at line %d: %w", s.lineNo+1, err)
		return false
	}
	if len(s.pending) > 0 {
		s.flush()
		return true
	}
	return false
}

// Block returns the block produced by the last successful call to Next.
func (s *Segmenter) Block() Block {
	return s.block
}

// Err returns the first read error, if any.
func (s *Segmenter) Err() error {
	return s.err
}

func (s *Segmenter) flush() {
	s.block = Block{Index: s.index, Lines: s.pending}
	s.index++
	s.pending = nil
}

// Segment reads all of r and returns its blocks in order.
func Segment(r io.Reader, opts *SegmenterOptions) ([]Block, error) {
	seg := NewSegmenter(r, opts)
	var blocks []Block
	for seg.Next() {
		blocks = append(blocks, seg.Block())
	}
	if err := seg.Err(); err != nil {
		return nil, err
	}
	return blocks, nil
}
