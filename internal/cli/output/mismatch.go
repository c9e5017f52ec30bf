package output

import (
	"fmt"
	"io"

	"github.com/cesarkawakami/adventofcode2021vs4/internal/alu"
)

// RenderMismatch writes the diagnostic for a block that failed to match:
// where it is, what was expected, and the block's raw text. The raw text is
// written unstyled so it can be copied back verbatim.
func RenderMismatch(w io.Writer, err *alu.MismatchError, s *Styles) error {
	b := err.Block
	header := fmt.Sprintf("block %d (lines %d-%d) does not match the template", b.Index, b.StartLine(), b.EndLine())
	if _, werr := fmt.Fprintln(w, s.Error.Render(header)); werr != nil {
		return werr
	}
	detail := fmt.Sprintf("  position %d, %s mismatch", err.Position, err.Reason)
	if _, werr := fmt.Fprintln(w, s.Muted.Render(detail)); werr != nil {
		return werr
	}
	if _, werr := fmt.Fprintf(w, "  want: %s\n  got:  %s\n", s.Highlight.Render(err.Want), s.Highlight.Render(err.Got)); werr != nil {
		return werr
	}
	if _, werr := fmt.Fprintln(w, s.Muted.Render("--- block ---")); werr != nil {
		return werr
	}
	_, werr := io.WriteString(w, b.Text())
	return werr
}
