// Package alu extracts coefficient triples from repeated ALU instruction blocks.
//
// An ALU program is a sequence of 18-instruction blocks, each starting with an
// "inp" instruction. Every block follows the same shape and differs only in
// three integer operands. The package splits a program into blocks, checks
// each block against the fixed template, and returns the three operands.
package alu

import "strings"

// Line is a retained input line: trimmed, non-blank and not a comment.
type Line struct {
	Text   string
	Number int // 1-based line number in the source stream
}

// Block is a run of lines starting at a sentinel line.
type Block struct {
	Index int // 0-based position of the block in the stream
	Lines []Line
}

// Text returns the block lines joined by newlines, with a trailing newline.
func (b Block) Text() string {
	var sb strings.Builder
	for _, l := range b.Lines {
		sb.WriteString(l.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// StartLine returns the source line number of the first line, or 0 for an
// empty block.
func (b Block) StartLine() int {
	if len(b.Lines) == 0 {
		return 0
	}
	return b.Lines[0].Number
}

// EndLine returns the source line number of the last line, or 0 for an
// empty block.
func (b Block) EndLine() int {
	if len(b.Lines) == 0 {
		return 0
	}
	return b.Lines[len(b.Lines)-1].Number
}

// BlockFromText builds a block from newline-separated text. Lines are trimmed
// and numbered from 1; blank lines are dropped.
func BlockFromText(text string) Block {
	var lines []Line
	for i, raw := range strings.Split(text, "\n") {
		t := strings.TrimSpace(raw)
		if t == "" {
			continue
		}
		lines = append(lines, Line{Text: t, Number: i + 1})
	}
	return Block{Lines: lines}
}

// Triple holds the three operands captured from one block.
type Triple struct {
	A int // operand of "div z"
	B int // operand of "add x"
	C int // operand of the final "add y"
}

// Record is a matched block's triple along with where it came from.
type Record struct {
	Index int // block index
	Line  int // source line of the block's sentinel
	Triple
}
