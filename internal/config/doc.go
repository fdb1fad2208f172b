// Package config provides configuration management for starfetch.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Resolving the base directory that holds the constellation records
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Searches ./share, /usr/share/starfetch, /opt/starfetch/share
//	// Color only on terminals, text listings
//
// # Loading from File
//
//	settings, err := config.Load("/home/me/.config/starfetch/config.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Resolving the Data Directory
//
//	base, err := config.Resolve(settings, logger)
//	if errors.Is(err, config.ErrNoResourceDir) {
//	    // nothing installed
//	}
//	records := config.ConstellationsDir(base)
//
// Three policies are recognized: an explicit asset path, the ordered
// search list, and a per-user data directory that is created on demand.
package config
