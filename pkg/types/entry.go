// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// FileEntry describes one PDF file found in the source directory.
// Entries are immutable once listed; the ordering stage returns a new
// slice rather than mutating the one it is given.
type FileEntry struct {
	// Path is the full path to the file (directory joined with the name).
	Path string `json:"path" yaml:"path"`

	// Base is the file name without directory or the .pdf extension
	// (e.g. "chapter_2" for "scans/chapter_2.pdf").
	Base string `json:"base" yaml:"base"`

	// ModTime is the filesystem last-modified timestamp.
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
}
