package merge

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfcombine/pkg/types"
)

// Report is the YAML record of one merge run.
type Report struct {
	Directory  string    `yaml:"directory"`
	Output     string    `yaml:"output"`
	Sort       string    `yaml:"sort"`
	CombinedAt time.Time `yaml:"combined_at"`
	Combined   []string  `yaml:"combined"`
	Skipped    []string  `yaml:"skipped,omitempty"`
}

// WriteReport writes a YAML record of the run to path.
func WriteReport(path string, cfg types.CombineConfig, result Result) error {
	report := Report{
		Directory:  cfg.Directory,
		Output:     cfg.Output,
		Sort:       string(cfg.Sort),
		CombinedAt: time.Now().UTC(),
		Combined:   result.Files,
		Skipped:    result.SkippedFiles,
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report to %s: %w", path, err)
	}
	return nil
}
