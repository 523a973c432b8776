// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"fmt"
	"os"
	"path/filepath"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFCPUCombiner is the pdfcpu-backed Combiner. Append validates each
// source and stages its path; Write merges the staged paths into a
// temporary file beside the output and renames it into place, so a
// failed merge never leaves a truncated file at the output path.
type PDFCPUCombiner struct {
	inputs []string
}

// NewPDFCPUCombiner returns an empty accumulator.
func NewPDFCPUCombiner() *PDFCPUCombiner {
	return &PDFCPUCombiner{}
}

// Append validates the PDF at path and stages it for the merge. A file
// pdfcpu cannot validate is rejected here so the caller can skip it
// before the merge runs.
func (c *PDFCPUCombiner) Append(path string) error {
	if err := pdfapi.ValidateFile(path, nil); err != nil {
		return fmt.Errorf("validating %s: %w", filepath.Base(path), err)
	}
	c.inputs = append(c.inputs, path)
	return nil
}

// Write merges the staged inputs into outPath atomically.
func (c *PDFCPUCombiner) Write(outPath string) error {
	if len(c.inputs) == 0 {
		return fmt.Errorf("nothing to write: no documents appended")
	}

	dir := filepath.Dir(outPath)
	tmpFile, err := os.CreateTemp(dir, ".combine-*.pdf")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	// pdfcpu truncates and rewrites the temp file itself.
	if err := pdfapi.MergeCreateFile(c.inputs, tmpPath, false, nil); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("merging: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
