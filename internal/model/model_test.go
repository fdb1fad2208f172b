package model

import (
	"errors"
	"testing"
)

func TestStar_InBounds(t *testing.T) {
	tests := []struct {
		star Star
		want bool
	}{
		{Star{X: 0, Y: 0, Glyph: '*'}, true},
		{Star{X: 21, Y: 9, Glyph: '*'}, true},
		{Star{X: 22, Y: 0, Glyph: '*'}, false},
		{Star{X: 0, Y: 10, Glyph: '*'}, false},
		{Star{X: 255, Y: 255, Glyph: '*'}, false},
	}

	for _, tt := range tests {
		t.Run(tt.star.String(), func(t *testing.T) {
			if got := tt.star.InBounds(); got != tt.want {
				t.Errorf("InBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstellation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		graph   []Star
		wantErr bool
		index   int
	}{
		{"empty graph", nil, false, 0},
		{"corners", []Star{{0, 0, '✦'}, {21, 9, '✦'}}, false, 0},
		{"column out of range", []Star{{1, 1, '*'}, {22, 3, '*'}}, true, 1},
		{"row out of range", []Star{{3, 10, '*'}}, true, 0},
		{"wide glyph", []Star{{3, 3, '星'}}, false, 0},
		{"emoji glyph", []Star{{3, 3, '🌟'}}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Constellation{Graph: tt.graph}
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error type = %T, want *ValidationError", err)
			}
			if verr.Index != tt.index {
				t.Errorf("ValidationError.Index = %d, want %d", verr.Index, tt.index)
			}
		})
	}
}

func TestConstellation_UnevenGlyphs(t *testing.T) {
	c := &Constellation{
		Graph: []Star{
			{X: 1, Y: 1, Glyph: '✦'},
			{X: 2, Y: 1, Glyph: '🌟'},
			{X: 3, Y: 1, Glyph: '*'},
			{X: 4, Y: 1, Glyph: '\t'},
		},
	}

	got := c.UnevenGlyphs()
	if len(got) != 2 {
		t.Fatalf("UnevenGlyphs() = %v, want 2 stars", got)
	}
	if got[0].Index != 1 || got[1].Index != 3 {
		t.Errorf("UnevenGlyphs() indexes = %d, %d, want 1, 3", got[0].Index, got[1].Index)
	}

	even := &Constellation{Graph: []Star{{X: 0, Y: 0, Glyph: '★'}}}
	if got := even.UnevenGlyphs(); len(got) != 0 {
		t.Errorf("UnevenGlyphs() = %v, want none", got)
	}
}

func TestConstellation_Grid(t *testing.T) {
	c := &Constellation{
		Graph: []Star{
			{X: 4, Y: 2, Glyph: '✦'},
			{X: 14, Y: 4, Glyph: '✦'},
			{X: 14, Y: 4, Glyph: '*'},
		},
	}

	grid := c.Grid()

	if grid[2][4] != '✦' {
		t.Errorf("grid[2][4] = %q, want '✦'", grid[2][4])
	}
	if grid[4][14] != '*' {
		t.Errorf("grid[4][14] = %q, want last star '*'", grid[4][14])
	}

	blanks := 0
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] == ' ' {
				blanks++
			}
		}
	}
	if want := GridWidth*GridHeight - 2; blanks != want {
		t.Errorf("blank cells = %d, want %d", blanks, want)
	}
}

func TestConstellation_GridSkipsOutOfBounds(t *testing.T) {
	c := &Constellation{Graph: []Star{{X: 30, Y: 30, Glyph: '*'}}}

	grid := c.Grid()
	for y := range grid {
		if string(grid[y][:]) != "                      " {
			t.Fatalf("row %d = %q, want blank", y, string(grid[y][:]))
		}
	}
}

func TestConstellation_TitleWidth(t *testing.T) {
	tests := []struct {
		title string
		want  int
	}{
		{"──────── Lyra ────────", GridWidth},
		{"── X ──", 7},
		{"", 0},
	}

	for _, tt := range tests {
		c := &Constellation{Title: tt.title}
		if got := c.TitleWidth(); got != tt.want {
			t.Errorf("TitleWidth(%q) = %d, want %d", tt.title, got, tt.want)
		}
	}
}
