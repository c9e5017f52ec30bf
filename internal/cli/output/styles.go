package output

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by ColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorModes lists the accepted color modes.
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Styles holds the lipgloss styles used for diagnostics.
type Styles struct {
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
}

// NewStyles returns styles bound to w. With color off every style renders
// plain text.
func NewStyles(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Styles{
		Error:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Muted:     r.NewStyle().Foreground(lipgloss.Color("8")),
		Highlight: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	}
}

// ColorEnabled decides whether diagnostics written to w should be colored.
// In auto mode w must be a terminal and NO_COLOR must be unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
