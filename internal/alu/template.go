package alu

import (
	"fmt"
	"strings"
)

// templateSource is the canonical block. Fields written as {name} are
// integer slots; slots are captured in the order a, b, c.
const templateSource = `inp w
mul x 0
add x z
mod x 26
div z {a}
add x {b}
eql x w
eql x 0
mul y 0
add y 25
mul y x
add y 1
mul z y
mul y 0
add y w
add y {c}
mul y x
add z y`

// TemplateLen is the number of lines in a well-formed block.
const TemplateLen = 18

// Field is one whitespace-separated token of a template line.
type Field struct {
	Literal string
	Slot    string // non-empty for an integer slot
}

// IsSlot reports whether the field captures an integer.
func (f Field) IsSlot() bool { return f.Slot != "" }

func (f Field) String() string {
	if f.IsSlot() {
		return "<" + f.Slot + ">"
	}
	return f.Literal
}

// Pattern is one template line.
type Pattern struct {
	Fields []Field
}

func (p Pattern) String() string {
	parts := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}

// Template is an ordered list of line patterns. The zero value is empty; use
// CanonicalTemplate for the ALU block template.
type Template struct {
	patterns []Pattern
	slots    []string
}

var canonical = mustParseTemplate(templateSource)

// CanonicalTemplate returns the 18-line ALU block template.
func CanonicalTemplate() Template {
	return canonical
}

// Len returns the number of lines in the template.
func (t Template) Len() int { return len(t.patterns) }

// Pattern returns a copy of the i-th (0-based) line pattern.
func (t Template) Pattern(i int) Pattern {
	p := t.patterns[i]
	return Pattern{Fields: append([]Field(nil), p.Fields...)}
}

// Slots returns the slot names in capture order.
func (t Template) Slots() []string {
	return append([]string(nil), t.slots...)
}

// SlotPositions returns the 1-based line positions holding a slot.
func (t Template) SlotPositions() []int {
	var pos []int
	for i, p := range t.patterns {
		for _, f := range p.Fields {
			if f.IsSlot() {
				pos = append(pos, i+1)
				break
			}
		}
	}
	return pos
}

func (t Template) String() string {
	var sb strings.Builder
	for _, p := range t.patterns {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func parseTemplate(src string) (Template, error) {
	var t Template
	seen := make(map[string]bool)
	for i, line := range strings.Split(src, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return Template{}, fmt.Errorf("template line %d is empty", i+1)
		}
		p := Pattern{Fields: make([]Field, len(fields))}
		for j, tok := range fields {
			if strings.HasPrefix(tok, "{") && strings.HasSuffix(tok, "}") {
				name := tok[1 : len(tok)-1]
				if name == "" || seen[name] {
					return Template{}, fmt.Errorf("template line %d: bad slot %q", i+1, tok)
				}
				seen[name] = true
				t.slots = append(t.slots, name)
				p.Fields[j] = Field{Slot: name}
				continue
			}
			p.Fields[j] = Field{Literal: tok}
		}
		t.patterns = append(t.patterns, p)
	}
	return t, nil
}

func mustParseTemplate(src string) Template {
	t, err := parseTemplate(src)
	if err != nil {
		panic(err)
	}
	return t
}
