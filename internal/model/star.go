package model

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Grid dimensions of the star map canvas. They are fixed and never derived
// from record data.
const (
	GridWidth  = 22
	GridHeight = 10
)

// glyphWidth measures glyphs independently of the user's locale, so that
// East Asian ambiguous-width characters count as a single column.
var glyphWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Star is one point of a constellation drawing.
//
// X is the column (0..GridWidth-1), Y is the row (0..GridHeight-1) and
// Glyph is the single character drawn at that cell.
//
// Example:
//
//	s := Star{X: 4, Y: 2, Glyph: '✦'}
type Star struct {
	X     uint8
	Y     uint8
	Glyph rune
}

// InBounds reports whether the star lies on the grid.
func (s Star) InBounds() bool {
	return int(s.X) < GridWidth && int(s.Y) < GridHeight
}

// String returns the star as "(x,y,'g')".
func (s Star) String() string {
	return fmt.Sprintf("(%d,%d,%q)", s.X, s.Y, s.Glyph)
}

// GlyphWidth returns the number of terminal columns the glyph occupies.
func (s Star) GlyphWidth() int {
	return glyphWidth.RuneWidth(s.Glyph)
}
