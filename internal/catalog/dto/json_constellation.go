package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/handiism/starfetch/internal/model"
)

// JSONStar is a star encoded as a three element array: [x, y, "glyph"].
type JSONStar struct {
	X     uint8
	Y     uint8
	Glyph rune
}

// UnmarshalJSON decodes the [x, y, "glyph"] tuple form.
func (js *JSONStar) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("star must be an [x, y, glyph] array: %w", err)
	}
	if len(parts) != 3 {
		return fmt.Errorf("star must have 3 elements, got %d", len(parts))
	}

	if err := json.Unmarshal(parts[0], &js.X); err != nil {
		return fmt.Errorf("star x: %w", err)
	}
	if err := json.Unmarshal(parts[1], &js.Y); err != nil {
		return fmt.Errorf("star y: %w", err)
	}

	var glyph string
	if err := json.Unmarshal(parts[2], &glyph); err != nil {
		return fmt.Errorf("star glyph: %w", err)
	}
	if utf8.RuneCountInString(glyph) != 1 {
		return fmt.Errorf("star glyph must be a single character, got %q", glyph)
	}
	js.Glyph, _ = utf8.DecodeRuneInString(glyph)

	return nil
}

// MarshalJSON encodes the star in its [x, y, "glyph"] tuple form.
func (js JSONStar) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{js.X, js.Y, string(js.Glyph)})
}

// JSONConstellation is the on-disk shape of a constellation record.
//
// Every field is required. Pointers distinguish a missing key from an
// empty value.
type JSONConstellation struct {
	Title          *string    `json:"title"`
	Graph          []JSONStar `json:"graph"`
	Name           *string    `json:"name"`
	Quadrant       *string    `json:"quadrant"`
	RightAscension *string    `json:"right_ascension"`
	Declination    *string    `json:"declination"`
	Area           *string    `json:"area"`
	MainStars      *string    `json:"main_stars"`
}

// Decode reads exactly one record from data. Trailing content after the
// object is rejected.
func Decode(data []byte) (*JSONConstellation, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var jc JSONConstellation
	if err := dec.Decode(&jc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after record")
	}
	if err := jc.checkRequired(); err != nil {
		return nil, err
	}

	return &jc, nil
}

func (jc *JSONConstellation) checkRequired() error {
	fields := []struct {
		key string
		ok  bool
	}{
		{"title", jc.Title != nil},
		{"graph", jc.Graph != nil},
		{"name", jc.Name != nil},
		{"quadrant", jc.Quadrant != nil},
		{"right_ascension", jc.RightAscension != nil},
		{"declination", jc.Declination != nil},
		{"area", jc.Area != nil},
		{"main_stars", jc.MainStars != nil},
	}
	for _, f := range fields {
		if !f.ok {
			return fmt.Errorf("missing field %q", f.key)
		}
	}
	return nil
}

// ToConstellation converts the record to a model.Constellation.
// Call Decode first; missing fields convert to empty strings.
func (jc *JSONConstellation) ToConstellation() *model.Constellation {
	c := &model.Constellation{
		Title:          deref(jc.Title),
		Name:           deref(jc.Name),
		Quadrant:       deref(jc.Quadrant),
		RightAscension: deref(jc.RightAscension),
		Declination:    deref(jc.Declination),
		Area:           deref(jc.Area),
		MainStars:      deref(jc.MainStars),
		Graph:          make([]model.Star, 0, len(jc.Graph)),
	}

	for _, js := range jc.Graph {
		c.Graph = append(c.Graph, model.Star{X: js.X, Y: js.Y, Glyph: js.Glyph})
	}

	return c
}

// FromConstellation builds the on-disk record for c.
func FromConstellation(c *model.Constellation) *JSONConstellation {
	jc := &JSONConstellation{
		Title:          ptr(c.Title),
		Name:           ptr(c.Name),
		Quadrant:       ptr(c.Quadrant),
		RightAscension: ptr(c.RightAscension),
		Declination:    ptr(c.Declination),
		Area:           ptr(c.Area),
		MainStars:      ptr(c.MainStars),
		Graph:          make([]JSONStar, 0, len(c.Graph)),
	}

	for _, s := range c.Graph {
		jc.Graph = append(jc.Graph, JSONStar{X: s.X, Y: s.Y, Glyph: s.Glyph})
	}

	return jc
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr(s string) *string {
	return &s
}
