package types

import "fmt"

// SortMode selects how input files are ordered before merging.
type SortMode string

const (
	// SortName orders files lexicographically by path.
	SortName SortMode = "name"

	// SortNumeric orders files by natural sort of the base name, so
	// "file2" comes before "file10".
	SortNumeric SortMode = "numeric"

	// SortDate orders files by ascending modification time.
	SortDate SortMode = "date"
)

// ParseSortMode validates a user-supplied sort mode string.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortName, SortNumeric, SortDate:
		return SortMode(s), nil
	}
	return "", fmt.Errorf("unknown sort mode %q (want name, numeric, or date)", s)
}

// CombineConfig holds settings for one merge run.
type CombineConfig struct {
	// Directory is the source directory scanned for .pdf files.
	Directory string `json:"directory" yaml:"directory"`

	// Output is the path the combined PDF is written to.
	Output string `json:"output" yaml:"output"`

	// Sort selects the input ordering: name, numeric, or date.
	Sort SortMode `json:"sort" yaml:"sort"`

	// ReportPath, when non-empty, is where a YAML record of the run
	// (inputs merged, inputs skipped) is written.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}
