package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Resolution policies for finding the base directory.
const (
	ResolutionSearch   = "search"
	ResolutionUserData = "userdata"
)

// Settings holds all configuration options.
type Settings struct {
	// Resource location
	AssetPath   string   `json:"asset_path" yaml:"asset_path"`
	SearchPaths []string `json:"search_paths" yaml:"search_paths"`
	Resolution  string   `json:"resolution" yaml:"resolution"` // search, userdata

	// Output
	Color      string `json:"color" yaml:"color"`             // auto, always, never
	ListFormat string `json:"list_format" yaml:"list_format"` // text, json, yaml

	// Loading
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// DefaultSearchPaths are tried in order when no asset path is configured.
var DefaultSearchPaths = []string{"./share", "/usr/share/starfetch", "/opt/starfetch/share"}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		SearchPaths: append([]string(nil), DefaultSearchPaths...),
		Resolution:  ResolutionSearch,
		Color:       "auto",
		ListFormat:  "text",
		Concurrency: 8,
	}
}

// DefaultPath returns the default settings file location,
// $XDG_CONFIG_HOME/starfetch/config.yaml or the platform config directory.
func DefaultPath() (string, error) {
	xdg.Reload()
	if xdg.ConfigHome == "" {
		return "", errors.New("locate user config directory: no home directory")
	}
	return filepath.Join(xdg.ConfigHome, "starfetch", "config.yaml"), nil
}

// Load reads settings from a JSON or YAML file, chosen by extension
// (.yaml and .yml are YAML, anything else JSON). Keys missing from the file
// keep their defaults; a missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the enumerated settings.
func (s *Settings) Validate() error {
	switch s.Resolution {
	case ResolutionSearch, ResolutionUserData:
	default:
		return fmt.Errorf("invalid resolution %q (want %s or %s)", s.Resolution, ResolutionSearch, ResolutionUserData)
	}

	switch s.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q (want auto, always or never)", s.Color)
	}

	switch strings.ToLower(s.ListFormat) {
	case "text", "json", "yaml", "yml":
	default:
		return fmt.Errorf("invalid list_format %q (want text, json or yaml)", s.ListFormat)
	}

	if s.Concurrency < 1 {
		return fmt.Errorf("invalid concurrency %d (must be at least 1)", s.Concurrency)
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
