package model

import (
	"fmt"
)

// Constellation is a fully loaded constellation record.
//
// A Constellation is built once by the catalog, handed to the renderer
// read-only and never modified afterwards.
//
// Example:
//
//	c := &Constellation{
//	    Title: "─────── Lyra ─────────",
//	    Graph: []Star{{X: 10, Y: 2, Glyph: '✦'}},
//	    Name:  "Lyra",
//	}
//	if err := c.Validate(); err != nil {
//	    return err
//	}
type Constellation struct {
	// Title is the pre-formatted string placed between the corners of the
	// top border. It is expected to be GridWidth columns wide.
	Title string

	// Graph holds the stars in drawing order.
	Graph []Star

	// Name is the display name shown next to row 1 of the map.
	Name string

	// Quadrant is the celestial quadrant label, e.g. "NQ1".
	Quadrant string

	// RightAscension is the right ascension range as free text.
	RightAscension string

	// Declination is the declination range as free text.
	Declination string

	// Area is the sky area including its rank, e.g. "594 sq. deg. (26th)".
	Area string

	// MainStars is the main star count, often "primary, total".
	MainStars string
}

// ValidationError reports the first star of a record that cannot be placed
// on the grid.
type ValidationError struct {
	Index  int
	Star   Star
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("star %d %s: %s", e.Index, e.Star, e.Reason)
}

// Validate checks that every star lies on the grid.
func (c *Constellation) Validate() error {
	for i, s := range c.Graph {
		if !s.InBounds() {
			return &ValidationError{
				Index:  i,
				Star:   s,
				Reason: fmt.Sprintf("outside the %dx%d grid", GridWidth, GridHeight),
			}
		}
	}
	return nil
}

// UnevenGlyphs returns the stars whose glyph does not occupy exactly one
// terminal column. They still render, but shift the rest of their row.
func (c *Constellation) UnevenGlyphs() []ValidationError {
	var uneven []ValidationError
	for i, s := range c.Graph {
		if w := s.GlyphWidth(); w != 1 {
			uneven = append(uneven, ValidationError{
				Index:  i,
				Star:   s,
				Reason: fmt.Sprintf("glyph is %d columns wide", w),
			})
		}
	}
	return uneven
}

// TitleWidth returns the display width of Title in terminal columns.
// A well-formed title is GridWidth columns wide.
func (c *Constellation) TitleWidth() int {
	return glyphWidth.StringWidth(c.Title)
}

// Grid returns the star map canvas. Empty cells hold a space; stars are
// applied in Graph order so a later star replaces an earlier one at the
// same position. Stars outside the grid are skipped, Validate reports them.
func (c *Constellation) Grid() [GridHeight][GridWidth]rune {
	var grid [GridHeight][GridWidth]rune
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	for _, s := range c.Graph {
		if !s.InBounds() {
			continue
		}
		grid[s.Y][s.X] = s.Glyph
	}

	return grid
}
