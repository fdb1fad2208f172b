package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects when emphasis escape sequences are emitted.
type ColorMode int

const (
	// ColorAuto emphasizes only when the sink is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways emphasizes regardless of the sink.
	ColorAlways
	// ColorNever never emphasizes.
	ColorNever
)

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

// Emphasizer highlights labels and names in rendered output.
type Emphasizer interface {
	Emphasize(s string) string
}

// Plain leaves text untouched.
type Plain struct{}

// Emphasize returns s unchanged.
func (Plain) Emphasize(s string) string { return s }

// Bold renders text in bold white through a lipgloss renderer.
type Bold struct {
	style lipgloss.Style
}

// NewBold creates a Bold emphasizer bound to r.
func NewBold(r *lipgloss.Renderer) *Bold {
	return &Bold{
		style: r.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
	}
}

// Emphasize returns s styled in bold white.
func (b *Bold) Emphasize(s string) string {
	return b.style.Render(s)
}

// NewEmphasizer picks an Emphasizer for output written to w.
//
// With ColorAuto the terminal capabilities of w decide: anything that is
// not a color-capable terminal (pipes, files, buffers) gets Plain.
func NewEmphasizer(w io.Writer, mode ColorMode) Emphasizer {
	switch mode {
	case ColorNever:
		return Plain{}
	case ColorAlways:
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI)
		return NewBold(r)
	}

	r := lipgloss.NewRenderer(w)
	if r.ColorProfile() == termenv.Ascii {
		return Plain{}
	}
	return NewBold(r)
}
