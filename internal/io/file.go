// Package ioutils provides file system utilities for starfetch.
//
// This package contains functions for:
//   - Directory checks and creation
//   - File writing
//   - Record file name handling (stems and extensions)
package ioutils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If overwrite is false and the file
// already exists, nothing is written and written is false.
//
// Example:
//
//	written, err := WriteFile("/usr/share/starfetch/constellations/lyra.json", data, false)
func WriteFile(path string, data []byte, overwrite bool) (written bool, err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		if !overwrite && errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, err
	}
	if err := f.Close(); err != nil {
		return false, err
	}

	return true, nil
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// IsDir reports whether path exists and is a directory. Symlinks are followed.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsRegularFile reports whether the directory entry at dir/entry is a
// regular file, following symlinks.
func IsRegularFile(dir string, entry fs.DirEntry) (bool, error) {
	if entry.Type().IsRegular() {
		return true, nil
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}

	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// dangling link
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// Stem returns the file name without ext, and whether the name carries ext
// at all. The stem may be empty for a name like ".json".
//
// Example:
//
//	Stem("orion.json", ".json")  // "orion", true
//	Stem("README.md", ".json")   // "", false
func Stem(name, ext string) (string, bool) {
	if filepath.Ext(name) != ext {
		return "", false
	}
	return strings.TrimSuffix(name, ext), true
}

// IsPlainName reports whether name can be used as a file stem inside a
// single directory: non-empty, no path separators and not "." or "..".
func IsPlainName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	return true
}
