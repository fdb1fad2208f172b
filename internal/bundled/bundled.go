// Package bundled ships a starter set of constellation records inside the
// binary, so a fresh data directory can be populated with `starfetch init`.
package bundled

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	ioutils "github.com/handiism/starfetch/internal/io"
)

const (
	recordDir = "constellations"
	recordExt = ".json"
)

//go:embed constellations/*.json
var records embed.FS

// Names returns the stems of the bundled records, sorted.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(records, recordDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if stem, ok := ioutils.Stem(entry.Name(), recordExt); ok && stem != "" {
			names = append(names, stem)
		}
	}
	return names, nil
}

// Record returns the raw JSON of the bundled record name.
func Record(name string) ([]byte, error) {
	return records.ReadFile(path.Join(recordDir, name+recordExt))
}

// Install writes the bundled records into dir, creating it if needed.
// Existing files are left alone unless overwrite is set. It returns the
// stems that were written.
func Install(dir string, overwrite bool) ([]string, error) {
	if err := ioutils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	names, err := Names()
	if err != nil {
		return nil, err
	}

	var installed []string
	for _, name := range names {
		data, err := Record(name)
		if err != nil {
			return installed, err
		}

		written, err := ioutils.WriteFile(filepath.Join(dir, name+recordExt), data, overwrite)
		if err != nil {
			return installed, fmt.Errorf("install %s: %w", name, err)
		}
		if written {
			installed = append(installed, name)
		}
	}

	return installed, nil
}
