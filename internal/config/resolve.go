package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"go.uber.org/zap"

	ioutils "github.com/handiism/starfetch/internal/io"
)

// ConstellationsSubdir is the directory under the base directory that
// holds the records.
const ConstellationsSubdir = "constellations"

var (
	// ErrNoResourceDir means no search path candidate holds a
	// constellations directory.
	ErrNoResourceDir = errors.New("the constellation folder was not found")

	// ErrMissingConstellations means an explicitly given asset path has
	// no constellations directory.
	ErrMissingConstellations = errors.New("an invalid asset folder was provided (missing `constellations/` directory)")
)

// ConfigError describes a base directory that could not be used.
type ConfigError struct {
	// Err is ErrNoResourceDir or ErrMissingConstellations.
	Err error
	// Paths are the directories that were tried.
	Paths []string
}

func (e *ConfigError) Error() string {
	if len(e.Paths) == 0 {
		return e.Err.Error()
	}
	if len(e.Paths) == 1 {
		return fmt.Sprintf("%v: %s", e.Err, e.Paths[0])
	}
	return fmt.Sprintf("%v (searched %v)", e.Err, e.Paths)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ConstellationsDir returns the records directory under base.
func ConstellationsDir(base string) string {
	return filepath.Join(base, ConstellationsSubdir)
}

// UserDataDir returns the per-user data directory: $XDG_DATA_HOME/starfetch,
// else the platform default (~/.local/share/starfetch on Linux,
// ~/Library/Application Support/starfetch on macOS, %LOCALAPPDATA%\starfetch
// on Windows). The environment is read again on every call.
func UserDataDir() (string, error) {
	xdg.Reload()
	if xdg.DataHome == "" {
		return "", errors.New("locate user data directory: no home directory")
	}
	return filepath.Join(xdg.DataHome, "starfetch"), nil
}

// Resolve returns the base directory holding the constellations directory.
//
// The policy is applied in order:
//  1. AssetPath, if set, must contain a constellations directory
//  2. the userdata resolution uses UserDataDir, creating the constellations
//     directory when it does not exist yet
//  3. otherwise the first SearchPaths entry with a constellations directory
//
// Failures are *ConfigError values matching ErrNoResourceDir or
// ErrMissingConstellations.
func Resolve(s *Settings, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if s.AssetPath != "" {
		if !ioutils.IsDir(ConstellationsDir(s.AssetPath)) {
			return "", &ConfigError{Err: ErrMissingConstellations, Paths: []string{s.AssetPath}}
		}
		logger.Debug("using asset path", zap.String("path", s.AssetPath))
		return s.AssetPath, nil
	}

	if s.Resolution == ResolutionUserData {
		base, err := UserDataDir()
		if err != nil {
			return "", err
		}
		dir := ConstellationsDir(base)
		if !ioutils.IsDir(dir) {
			logger.Info("creating user data directory", zap.String("path", dir))
			if err := ioutils.EnsureDir(dir); err != nil {
				return "", fmt.Errorf("create %s: %w", dir, err)
			}
		}
		return base, nil
	}

	for _, candidate := range s.SearchPaths {
		if ioutils.IsDir(ConstellationsDir(candidate)) {
			logger.Debug("found resource directory", zap.String("path", candidate))
			return candidate, nil
		}
		logger.Debug("no constellations directory", zap.String("candidate", candidate))
	}

	return "", &ConfigError{Err: ErrNoResourceDir, Paths: s.SearchPaths}
}
