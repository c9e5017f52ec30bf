package alu

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// intPattern is the accepted slot syntax. strconv alone would also take "+5".
var intPattern = regexp.MustCompile(`^-?[0-9]+$`)

// Matcher checks blocks against a template and extracts their slots.
type Matcher struct {
	tmpl Template
}

// NewMatcher returns a matcher for the canonical ALU template.
func NewMatcher() *Matcher {
	return &Matcher{tmpl: CanonicalTemplate()}
}

// Template returns the template the matcher checks against.
func (m *Matcher) Template() Template {
	return m.tmpl
}

// Match checks b line by line. Fields are compared after splitting on
// whitespace, so spacing inside a line does not matter. Any deviation returns
// a *MismatchError.
func (m *Matcher) Match(b Block) (Triple, error) {
	values := make([]int, 0, len(m.tmpl.slots))

	n := min(len(b.Lines), m.tmpl.Len())
	for i := 0; i < n; i++ {
		pattern := m.tmpl.patterns[i]
		line := b.Lines[i]
		fields := strings.Fields(line.Text)
		if len(fields) != len(pattern.Fields) {
			return Triple{}, m.mismatch(b, i+1, ReasonLiteral, pattern.String(), line.Text)
		}
		for j, f := range pattern.Fields {
			if !f.IsSlot() {
				if fields[j] != f.Literal {
					return Triple{}, m.mismatch(b, i+1, ReasonLiteral, pattern.String(), line.Text)
				}
				continue
			}
			v, err := parseSlot(fields[j])
			if err != nil {
				return Triple{}, m.mismatch(b, i+1, ReasonParameter, pattern.String(), line.Text)
			}
			values = append(values, v)
		}
	}

	switch {
	case len(b.Lines) < m.tmpl.Len():
		pos := len(b.Lines) + 1
		return Triple{}, m.mismatch(b, pos, ReasonLineCount, m.tmpl.patterns[pos-1].String(), endOfBlock)
	case len(b.Lines) > m.tmpl.Len():
		pos := m.tmpl.Len() + 1
		return Triple{}, m.mismatch(b, pos, ReasonLineCount, endOfBlock, b.Lines[pos-1].Text)
	}

	if len(values) != 3 {
		return Triple{}, fmt.Errorf("template has %d slots, need 3", len(values))
	}
	return Triple{A: values[0], B: values[1], C: values[2]}, nil
}

// MatchText matches a block given as newline-separated text.
func (m *Matcher) MatchText(text string) (Triple, error) {
	return m.Match(BlockFromText(text))
}

func (m *Matcher) mismatch(b Block, pos int, reason MismatchReason, want, got string) *MismatchError {
	return &MismatchError{Block: b, Position: pos, Reason: reason, Want: want, Got: got}
}

func parseSlot(s string) (int, error) {
	if !intPattern.MatchString(s) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return strconv.Atoi(s)
}

var defaultMatcher = NewMatcher()

// Match checks b against the canonical template.
func Match(b Block) (Triple, error) {
	return defaultMatcher.Match(b)
}
