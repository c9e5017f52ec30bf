package alu

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cesarkawakami/adventofcode2021vs4/internal/testutil"
)

func TestTemplate_Shape(t *testing.T) {
	tmpl := CanonicalTemplate()

	assert.Equal(t, TemplateLen, tmpl.Len())
	assert.Equal(t, []string{"a", "b", "c"}, tmpl.Slots())
	assert.Equal(t, []int{5, 6, 16}, tmpl.SlotPositions())
	assert.Equal(t, "div z <a>", tmpl.Pattern(4).String())
	assert.Equal(t, "add y w", tmpl.Pattern(14).String())
	assert.True(t, strings.HasPrefix(tmpl.String(), "inp w\nmul x 0\n"))
}

func TestTemplate_PatternIsCopy(t *testing.T) {
	tmpl := CanonicalTemplate()
	p := tmpl.Pattern(0)
	p.Fields[0].Literal = "changed"

	assert.Equal(t, "inp w", CanonicalTemplate().Pattern(0).String())
}

func TestMatcher_Template(t *testing.T) {
	tmpl := NewMatcher().Template()

	assert.Equal(t, CanonicalTemplate().String(), tmpl.String())
	assert.Equal(t, "inp", tmpl.Pattern(0).Fields[0].Literal)
}

func TestParseTemplate_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "empty line", src: "inp w\n\nadd x 1"},
		{name: "empty slot", src: "add x {}"},
		{name: "duplicate slot", src: "add x {a}\nadd y {a}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTemplate(tt.src)
			assert.Error(t, err)
		})
	}
}

func TestMatch_RoundTrip(t *testing.T) {
	tests := []struct {
		a, b, c int
	}{
		{1, 15, 7},
		{26, -11, 1},
		{1, 0, 0},
		{-26, -26, -26},
		{123456, -987654, 42},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%d_%d", tt.a, tt.b, tt.c), func(t *testing.T) {
			got, err := NewMatcher().MatchText(testutil.Block(tt.a, tt.b, tt.c))
			require.NoError(t, err)
			assert.Equal(t, Triple{A: tt.a, B: tt.b, C: tt.c}, got)
		})
	}
}

func TestMatch_WhitespaceInsensitive(t *testing.T) {
	want, err := NewMatcher().MatchText(testutil.Block(1, 5, 3))
	require.NoError(t, err)

	lines := testutil.BlockLines(1, 5, 3)
	lines[5] = "add   x    5"
	lines[4] = "div\tz\t1"
	lines[15] = "  add y  3  "
	got, err := NewMatcher().MatchText(strings.Join(lines, "\n") + "\n")
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestMatch_Deviations(t *testing.T) {
	tests := []struct {
		name     string
		edit     func([]string) []string
		reason   MismatchReason
		position int
	}{
		{
			name:     "literal operand changed",
			edit:     func(l []string) []string { l[1] = "mul x 1"; return l },
			reason:   ReasonLiteral,
			position: 2,
		},
		{
			name:     "opcode changed",
			edit:     func(l []string) []string { l[6] = "eql y w"; return l },
			reason:   ReasonLiteral,
			position: 7,
		},
		{
			name:     "extra field",
			edit:     func(l []string) []string { l[2] = "add x z 1"; return l },
			reason:   ReasonLiteral,
			position: 3,
		},
		{
			name:     "fields run together",
			edit:     func(l []string) []string { l[0] = "inpw"; return l },
			reason:   ReasonLiteral,
			position: 1,
		},
		{
			name:     "slot holds a register",
			edit:     func(l []string) []string { l[5] = "add x w"; return l },
			reason:   ReasonParameter,
			position: 6,
		},
		{
			name:     "slot with plus sign",
			edit:     func(l []string) []string { l[4] = "div z +1"; return l },
			reason:   ReasonParameter,
			position: 5,
		},
		{
			name:     "slot with double minus",
			edit:     func(l []string) []string { l[15] = "add y --3"; return l },
			reason:   ReasonParameter,
			position: 16,
		},
		{
			name:     "slot overflows int",
			edit:     func(l []string) []string { l[15] = "add y 99999999999999999999999"; return l },
			reason:   ReasonParameter,
			position: 16,
		},
		{
			name:     "missing trailing line",
			edit:     func(l []string) []string { return l[:17] },
			reason:   ReasonLineCount,
			position: 18,
		},
		{
			name:     "extra trailing line",
			edit:     func(l []string) []string { return append(l, "mul x 0") },
			reason:   ReasonLineCount,
			position: 19,
		},
		{
			name:     "missing middle line",
			edit:     func(l []string) []string { return append(l[:3:3], l[4:]...) },
			reason:   ReasonLiteral,
			position: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := tt.edit(testutil.BlockLines(1, 12, 6))
			text := strings.Join(lines, "\n") + "\n"

			_, err := NewMatcher().MatchText(text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrStructuralMismatch))

			var mm *MismatchError
			require.True(t, errors.As(err, &mm))
			assert.Equal(t, tt.reason, mm.Reason)
			assert.Equal(t, tt.position, mm.Position)
			assert.Equal(t, text, mm.Block.Text(), "mismatch must carry the raw block")
		})
	}
}

func TestMatch_EmptyBlock(t *testing.T) {
	_, err := Match(Block{Index: 3})

	var mm *MismatchError
	require.True(t, errors.As(err, &mm))
	assert.Equal(t, ReasonLineCount, mm.Reason)
	assert.Equal(t, 1, mm.Position)
	assert.Equal(t, "inp w", mm.Want)
	assert.Equal(t, 0, mm.Line())
}

func TestMismatchError_Message(t *testing.T) {
	b := BlockFromText(testutil.Block(1, 2, 3))
	b.Index = 7
	b.Lines[1].Text = "mul x 1"

	_, err := Match(b)
	require.Error(t, err)
	assert.Equal(t,
		`block 7 does not match template at line 2 (position 2): literal mismatch: want "mul x 0", got "mul x 1"`,
		err.Error())
}
