// Package output renders extracted coefficient triples and diagnostics.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/cesarkawakami/adventofcode2021vs4/internal/alu"
)

// Format selects how triples are written.
type Format string

// Output formats.
const (
	FormatLiteral Format = "literal" // {  1,  13,  8},
	FormatJSON    Format = "json"    // [1,13,8]
	FormatIndexed Format = "indexed" //   0: (  1,  13,  8)
	FormatTable   Format = "table"
	FormatYAML    Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatLiteral, FormatJSON, FormatIndexed, FormatTable, FormatYAML}

// ParseFormat validates a format name. The empty string means literal.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatLiteral, nil
	}
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Emitter writes records. Buffered formats write on Flush.
type Emitter interface {
	alu.Emitter
	Flush() error
}

// NewEmitter returns the emitter for format f writing to w.
func NewEmitter(w io.Writer, f Format) (Emitter, error) {
	switch f {
	case FormatLiteral, "":
		return &lineEmitter{w: w, format: func(r alu.Record) (string, error) { return Literal(r.Triple), nil }}, nil
	case FormatJSON:
		return &lineEmitter{w: w, format: jsonLine}, nil
	case FormatIndexed:
		return &lineEmitter{w: w, format: func(r alu.Record) (string, error) { return Indexed(r), nil }}, nil
	case FormatTable:
		return newTableEmitter(w), nil
	case FormatYAML:
		return &yamlEmitter{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", f)
	}
}

// Literal formats a triple as an array-entry literal: widths 3, 4 and 3,
// each with a reserved sign column.
func Literal(t alu.Triple) string {
	return fmt.Sprintf("{% 3d,% 4d,% 3d},", t.A, t.B, t.C)
}

// Indexed formats a record with its block index.
func Indexed(r alu.Record) string {
	return fmt.Sprintf("% 3d: (% 3d,% 4d,% 3d)", r.Index, r.A, r.B, r.C)
}

func jsonLine(r alu.Record) (string, error) {
	b, err := json.Marshal([3]int{r.A, r.B, r.C})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// lineEmitter writes one line per record as it arrives.
type lineEmitter struct {
	w      io.Writer
	format func(alu.Record) (string, error)
}

func (e *lineEmitter) Emit(r alu.Record) error {
	line, err := e.format(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.w, line)
	return err
}

func (e *lineEmitter) Flush() error { return nil }

type tableEmitter struct {
	w    io.Writer
	t    table.Writer
	rows int
}

func newTableEmitter(w io.Writer) *tableEmitter {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Line", "A", "B", "C"})
	return &tableEmitter{w: w, t: t}
}

func (e *tableEmitter) Emit(r alu.Record) error {
	e.t.AppendRow(table.Row{r.Index, r.Line, r.A, r.B, r.C})
	e.rows++
	return nil
}

func (e *tableEmitter) Flush() error {
	if e.rows == 0 {
		_, err := fmt.Fprintln(e.w, "(0 blocks)")
		return err
	}
	e.t.Render()
	_, err := fmt.Fprintf(e.w, "(%d blocks)\n", e.rows)
	return err
}

type yamlRecord struct {
	Index int `yaml:"index"`
	Line  int `yaml:"line"`
	A     int `yaml:"a"`
	B     int `yaml:"b"`
	C     int `yaml:"c"`
}

type yamlEmitter struct {
	w       io.Writer
	records []yamlRecord
}

func (e *yamlEmitter) Emit(r alu.Record) error {
	e.records = append(e.records, yamlRecord{Index: r.Index, Line: r.Line, A: r.A, B: r.B, C: r.C})
	return nil
}

func (e *yamlEmitter) Flush() error {
	records := e.records
	if records == nil {
		records = []yamlRecord{}
	}
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
