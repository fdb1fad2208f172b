package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/handiism/starfetch/internal/catalog"
)

// ListFormat represents the supported listing output formats.
//
//   - Text: one "stem - Name (Quadrant)" line per record
//   - JSON: an indented array of objects
//   - YAML: a sequence of mappings
type ListFormat int

const (
	// FormatText is the human readable listing.
	FormatText ListFormat = iota

	// FormatJSON emits [{"stem": ..., "name": ..., "quadrant": ...}].
	FormatJSON

	// FormatYAML emits the same objects as a YAML sequence.
	FormatYAML
)

// ParseListFormat parses "text", "json" or "yaml".
func ParseListFormat(s string) (ListFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatText, fmt.Errorf("unknown list format %q (want text, json or yaml)", s)
}

// SummaryWriter writes constellation listings.
//
// Example:
//
//	sw := NewSummaryWriter(FormatText, emph)
//	err := sw.Write(os.Stdout, summaries)
//
//	// Result:
//	// lyra - Lyra (NQ4)
//	// orion - Orion (NQ1)
type SummaryWriter struct {
	format ListFormat
	emph   Emphasizer
}

// NewSummaryWriter creates a SummaryWriter. The emphasizer only applies to
// FormatText; a nil emphasizer means Plain.
func NewSummaryWriter(format ListFormat, emph Emphasizer) *SummaryWriter {
	if emph == nil {
		emph = Plain{}
	}
	return &SummaryWriter{
		format: format,
		emph:   emph,
	}
}

// Write formats summaries and writes them to w in a single write.
func (sw *SummaryWriter) Write(w io.Writer, summaries []catalog.Summary) error {
	var (
		content string
		err     error
	)

	switch sw.format {
	case FormatJSON:
		content, err = sw.createJSON(summaries)
	case FormatYAML:
		content, err = sw.createYAML(summaries)
	default:
		content = sw.createText(summaries)
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, content)
	return err
}

func (sw *SummaryWriter) createText(summaries []catalog.Summary) string {
	var sb strings.Builder
	for _, s := range summaries {
		sb.WriteString(fmt.Sprintf("%s - %s (%s)\n", sw.emph.Emphasize(s.Stem), s.Name, s.Quadrant))
	}
	return sb.String()
}

func (sw *SummaryWriter) createJSON(summaries []catalog.Summary) (string, error) {
	if summaries == nil {
		summaries = []catalog.Summary{}
	}
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode summaries: %w", err)
	}
	return string(data) + "\n", nil
}

func (sw *SummaryWriter) createYAML(summaries []catalog.Summary) (string, error) {
	if summaries == nil {
		summaries = []catalog.Summary{}
	}
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(summaries); err != nil {
		return "", fmt.Errorf("encode summaries: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode summaries: %w", err)
	}
	return sb.String(), nil
}
