package render

import (
	"io"
	"strings"

	"github.com/handiism/starfetch/internal/model"
)

const (
	frameTopLeft     = "┌"
	frameTopRight    = "┐"
	frameBottomLeft  = "└"
	frameBottomRight = "┘"
	frameSide        = "│"
	frameFill        = "─"

	// infoIndent separates the map from the metadata column.
	infoIndent = "      "
)

// Renderer draws constellations as framed star maps with their metadata.
//
// Example:
//
//	r := render.NewRenderer(render.NewEmphasizer(os.Stdout, render.ColorAuto))
//	if err := r.Render(os.Stdout, constellation); err != nil {
//	    return err
//	}
//
// Output for a record (without emphasis):
//
//	┌──────── Orion ───────┐
//	│                      │
//	│                      │      Orion
//	│    ✦                 │
//	│                      │      Quadrant: NQ1
//	│              ✦       │      Right ascension: 04h 37m to 06h 25m
//	│                      │      Declination: −10.97° to +22.87°
//	│                      │      Area: 594 sq. deg. (26th)
//	│                      │      Main stars: 7, 81
//	│                      │
//	│                      │
//	└──────────────────────┘
type Renderer struct {
	emph Emphasizer
}

// NewRenderer creates a Renderer. A nil emphasizer means Plain.
func NewRenderer(emph Emphasizer) *Renderer {
	if emph == nil {
		emph = Plain{}
	}
	return &Renderer{emph: emph}
}

// Render writes the star map for c to w in a single write.
func (r *Renderer) Render(w io.Writer, c *model.Constellation) error {
	_, err := io.WriteString(w, r.String(c))
	return err
}

// String returns the rendered star map for c.
func (r *Renderer) String(c *model.Constellation) string {
	var b strings.Builder

	b.WriteString(frameTopLeft + c.Title + frameTopRight + "\n")

	grid := c.Grid()
	for i, row := range grid {
		b.WriteString(frameSide)
		b.WriteString(string(row[:]))
		b.WriteString(frameSide)
		b.WriteString(r.infoFor(i, c))
		b.WriteString("\n")
	}

	b.WriteString(frameBottomLeft + strings.Repeat(frameFill, model.GridWidth) + frameBottomRight + "\n")

	return b.String()
}

// infoFor returns the metadata shown to the right of grid row i.
// The row to field mapping is fixed.
func (r *Renderer) infoFor(row int, c *model.Constellation) string {
	switch row {
	case 1:
		return infoIndent + r.emph.Emphasize(c.Name)
	case 3:
		return r.field("Quadrant", c.Quadrant)
	case 4:
		return r.field("Right ascension", c.RightAscension)
	case 5:
		return r.field("Declination", c.Declination)
	case 6:
		return r.field("Area", c.Area)
	case 7:
		return r.field("Main stars", c.MainStars)
	}
	return ""
}

func (r *Renderer) field(label, value string) string {
	return infoIndent + r.emph.Emphasize(label) + ": " + value
}
