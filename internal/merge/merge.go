// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge combines an ordered list of PDF files into one output
// document. The append/write primitive sits behind the Combiner
// interface; the sequencing and skip-on-error policy live here.
package merge

import (
	"fmt"
	"io"

	"github.com/pdiddy/pdfcombine/pkg/types"
)

// Combiner accumulates source documents and writes the combined result.
// Append stages one source file; Write produces the final document.
// Implementations must leave no partial file at outPath when Write fails.
type Combiner interface {
	Append(path string) error
	Write(outPath string) error
}

// Result holds the outcome of one merge run.
type Result struct {
	// Files lists the inputs that were combined, in merge order.
	Files []string

	// SkippedFiles lists the inputs that failed to append and were
	// skipped, in encounter order.
	SkippedFiles []string
}

// Combined returns the number of files merged into the output.
func (r Result) Combined() int {
	return len(r.Files)
}

// Skipped returns the number of unreadable files that were skipped.
func (r Result) Skipped() int {
	return len(r.SkippedFiles)
}

// Combine appends each entry to c in order and writes the combined
// document to outPath. A file that fails to append is reported on w and
// skipped; this is the only tolerated partial failure. Progress and the
// final success line go to w.
func Combine(c Combiner, entries []types.FileEntry, outPath string, w io.Writer) (Result, error) {
	var result Result

	fmt.Fprintf(w, "Combining %d PDF files...\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(w, "  adding: %s\n", e.Base)
		if err := c.Append(e.Path); err != nil {
			fmt.Fprintf(w, "  warning: skipping %s: %v\n", e.Base, err)
			result.SkippedFiles = append(result.SkippedFiles, e.Path)
			continue
		}
		result.Files = append(result.Files, e.Path)
	}

	if result.Combined() == 0 {
		return result, fmt.Errorf("no readable PDF files among %d inputs", len(entries))
	}

	if err := c.Write(outPath); err != nil {
		return result, fmt.Errorf("writing combined PDF to %s: %w", outPath, err)
	}

	if n := result.Skipped(); n > 0 {
		fmt.Fprintf(w, "Combined %d PDF files into %s (%d skipped)\n", result.Combined(), outPath, n)
	} else {
		fmt.Fprintf(w, "Combined %d PDF files into %s\n", result.Combined(), outPath)
	}
	return result, nil
}
