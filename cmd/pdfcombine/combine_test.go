// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/pdfcombine/internal/merge"
	"github.com/pdiddy/pdfcombine/internal/scan"
	"github.com/pdiddy/pdfcombine/pkg/types"
)

type fakeLister struct {
	entries []types.FileEntry
	err     error
}

func (f fakeLister) ListPDFFiles(dir string) ([]types.FileEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

type fakeCombiner struct {
	appended []string
	wrote    string
}

func (f *fakeCombiner) Append(path string) error {
	f.appended = append(f.appended, path)
	return nil
}

func (f *fakeCombiner) Write(outPath string) error {
	f.wrote = outPath
	return nil
}

// swapCollaborators installs fakes and restores the production wiring
// when the test finishes.
func swapCollaborators(t *testing.T, l scan.Lister, c merge.Combiner) {
	t.Helper()
	prevLister, prevNew := pdfLister, newCombiner
	pdfLister = l
	newCombiner = func() merge.Combiner { return c }
	t.Cleanup(func() {
		pdfLister = prevLister
		newCombiner = prevNew
	})
}

func TestCombine_OrdersEntriesBeforeMerging(t *testing.T) {
	// The lister hands back alphabetical order; numeric mode must put
	// a2 ahead of a10 before anything is appended.
	lister := fakeLister{entries: []types.FileEntry{
		{Path: "/in/a10.pdf", Base: "a10"},
		{Path: "/in/a2.pdf", Base: "a2"},
	}}
	fake := &fakeCombiner{}
	swapCollaborators(t, lister, fake)

	cfg := types.CombineConfig{Directory: "/in", Output: "/out/all.pdf", Sort: types.SortNumeric}
	var out bytes.Buffer
	if err := combine(cfg, &out); err != nil {
		t.Fatalf("combine: %v", err)
	}

	if len(fake.appended) != 2 || fake.appended[0] != "/in/a2.pdf" || fake.appended[1] != "/in/a10.pdf" {
		t.Errorf("appended = %v, want [/in/a2.pdf /in/a10.pdf]", fake.appended)
	}
	if fake.wrote != "/out/all.pdf" {
		t.Errorf("wrote to %q, want /out/all.pdf", fake.wrote)
	}
}

func TestCombine_ListerErrorPropagates(t *testing.T) {
	listErr := errors.New("directory not found")
	fake := &fakeCombiner{}
	swapCollaborators(t, fakeLister{err: listErr}, fake)

	cfg := types.CombineConfig{Directory: "/nope", Output: "out.pdf", Sort: types.SortName}
	var out bytes.Buffer
	if err := combine(cfg, &out); !errors.Is(err, listErr) {
		t.Fatalf("error = %v, want %v", err, listErr)
	}
	if fake.wrote != "" {
		t.Errorf("output written despite lister failure")
	}
}

func TestCombine_WritesReportWhenRequested(t *testing.T) {
	lister := fakeLister{entries: []types.FileEntry{{Path: "/in/a.pdf", Base: "a"}}}
	swapCollaborators(t, lister, &fakeCombiner{})

	reportPath := filepath.Join(t.TempDir(), "report.yaml")
	cfg := types.CombineConfig{
		Directory:  "/in",
		Output:     "/out/all.pdf",
		Sort:       types.SortNumeric,
		ReportPath: reportPath,
	}
	var out bytes.Buffer
	if err := combine(cfg, &out); err != nil {
		t.Fatalf("combine: %v", err)
	}
	if _, err := os.Stat(reportPath); err != nil {
		t.Errorf("report not written: %v", err)
	}
}
