package alu

import (
	"errors"
	"fmt"
)

// ErrStructuralMismatch is matched by every *MismatchError via errors.Is.
var ErrStructuralMismatch = errors.New("structural mismatch")

// MismatchReason classifies why a block failed to match.
type MismatchReason string

// Mismatch reasons.
const (
	ReasonLineCount MismatchReason = "line count"
	ReasonLiteral   MismatchReason = "literal"
	ReasonParameter MismatchReason = "parameter"
)

// endOfBlock stands in for a missing or unexpected line in Want/Got.
const endOfBlock = "<end of block>"

// MismatchError reports a block that does not conform to the template.
type MismatchError struct {
	Block    Block
	Position int // 1-based line position within the block
	Reason   MismatchReason
	Want     string
	Got      string
}

func (e *MismatchError) Error() string {
	if line := e.Line(); line > 0 {
		return fmt.Sprintf("block %d does not match template at line %d (position %d): %s mismatch: want %q, got %q",
			e.Block.Index, line, e.Position, e.Reason, e.Want, e.Got)
	}
	return fmt.Sprintf("block %d does not match template at position %d: %s mismatch: want %q, got %q",
		e.Block.Index, e.Position, e.Reason, e.Want, e.Got)
}

// Is makes errors.Is(err, ErrStructuralMismatch) true.
func (e *MismatchError) Is(target error) bool {
	return target == ErrStructuralMismatch
}

// Line returns the source line of the offending position. A missing line
// reports the block's last line; 0 means the block is empty.
func (e *MismatchError) Line() int {
	if e.Position >= 1 && e.Position <= len(e.Block.Lines) {
		return e.Block.Lines[e.Position-1].Number
	}
	return e.Block.EndLine()
}
