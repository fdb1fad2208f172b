// Package ioutils provides file system utilities.
//
// This package contains functions for:
//   - Writing files without clobbering existing ones
//   - Directory creation and checks
//   - Splitting record file names into stem and extension
//
// # File Operations
//
//	// Write a record unless one is already there
//	written, err := ioutils.WriteFile("/data/constellations/lyra.json", data, false)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Record Names
//
// Records are addressed by file stem:
//
//	stem, ok := ioutils.Stem("orion.json", ".json") // "orion", true
//	ioutils.IsPlainName("../etc/passwd")           // false
package ioutils
