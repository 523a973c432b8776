package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfcombine/internal/merge"
	"github.com/pdiddy/pdfcombine/internal/order"
	"github.com/pdiddy/pdfcombine/internal/scan"
	"github.com/pdiddy/pdfcombine/pkg/types"
)

// Production collaborators for the pipeline. Tests substitute fakes.
var (
	pdfLister   scan.Lister = scan.FSLister{}
	newCombiner             = func() merge.Combiner { return merge.NewPDFCPUCombiner() }
)

func init() {
	rootCmd.Flags().StringP("directory", "d", "", "directory containing PDF files (default: current directory)")
	rootCmd.Flags().StringP("output", "o", "", "output PDF file path (default: combined_output.pdf)")
	rootCmd.Flags().StringP("sort", "s", "", "sort method: name, numeric, or date (default: numeric)")
	rootCmd.Flags().String("report", "", "write a YAML record of the run to this path")
}

// runCombine resolves the configuration and hands off to the pipeline.
func runCombine(cmd *cobra.Command, args []string) error {
	cfg, err := combineConfig(cmd)
	if err != nil {
		return err
	}
	return combine(cfg, os.Stdout)
}

// combine wires the pipeline: list the directory, order the entries,
// merge into the output.
func combine(cfg types.CombineConfig, w io.Writer) error {
	entries, err := pdfLister.ListPDFFiles(cfg.Directory)
	if err != nil {
		return err
	}

	ordered := order.Sort(entries, cfg.Sort)

	result, err := merge.Combine(newCombiner(), ordered, cfg.Output, w)
	if err != nil {
		return err
	}

	if cfg.ReportPath != "" {
		if err := merge.WriteReport(cfg.ReportPath, cfg, result); err != nil {
			return err
		}
	}
	return nil
}

// combineConfig builds the run configuration from flags, falling back to
// viper (config file, env, defaults) for anything left unset.
func combineConfig(cmd *cobra.Command) (types.CombineConfig, error) {
	dir, _ := cmd.Flags().GetString("directory")
	if dir == "" {
		dir = viper.GetString("directory")
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = viper.GetString("output")
	}
	sortFlag, _ := cmd.Flags().GetString("sort")
	if sortFlag == "" {
		sortFlag = viper.GetString("sort")
	}
	report, _ := cmd.Flags().GetString("report")

	mode, err := types.ParseSortMode(sortFlag)
	if err != nil {
		return types.CombineConfig{}, err
	}

	return types.CombineConfig{
		Directory:  dir,
		Output:     output,
		Sort:       mode,
		ReportPath: report,
	}, nil
}
