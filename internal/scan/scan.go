// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan lists the PDF files in a source directory.
package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/pdfcombine/pkg/types"
)

// pdfExt is the extension matched when scanning; matching is exact,
// so "REPORT.PDF" is not picked up.
const pdfExt = ".pdf"

// Sentinel errors for the failure modes of a directory scan. Callers
// match them with errors.Is.
var (
	ErrNotFound      = errors.New("directory not found")
	ErrNotADirectory = errors.New("path is not a directory")
	ErrNoPDFs        = errors.New("no PDF files found")
)

// Lister enumerates the PDF files under a directory. The production
// implementation reads the real filesystem; tests substitute fakes.
type Lister interface {
	// ListPDFFiles returns the .pdf files directly under dir,
	// alphabetical by path.
	ListPDFFiles(dir string) ([]types.FileEntry, error)
}

// FSLister is the filesystem-backed Lister.
type FSLister struct{}

// ListPDFFiles returns every regular file directly under dir whose name
// ends in ".pdf", ordered alphabetically by path. Subdirectories are not
// entered. It fails with ErrNotFound, ErrNotADirectory, or ErrNoPDFs
// when the directory is missing, not a directory, or holds no PDFs.
func (FSLister) ListPDFFiles(dir string) ([]types.FileEntry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var entries []types.FileEntry
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, pdfExt) {
			continue
		}
		fi, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		entries = append(entries, types.FileEntry{
			Path:    filepath.Join(dir, name),
			Base:    strings.TrimSuffix(name, pdfExt),
			ModTime: fi.ModTime(),
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPDFs, dir)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}
