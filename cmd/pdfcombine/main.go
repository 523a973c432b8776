// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfcombine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; the tool has one job, so the whole
// pipeline hangs off the root rather than a subcommand.
var rootCmd = &cobra.Command{
	Use:   "pdfcombine",
	Short: "Merge every PDF in a directory into a single file",
	Long: `pdfcombine scans a directory for PDF files, orders them, and merges
them into one output document. Ordering is selectable: alphabetical
(name), natural numeric (numeric, so "file2" comes before "file10"),
or modification time (date).

Files that cannot be read are skipped with a warning; everything else
aborts the run with a message on stderr and a non-zero exit status.`,
	SilenceUsage: true,
	RunE:         runCombine,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfcombine.yaml or ~/.config/pdfcombine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfcombine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfcombine"))
		}
	}

	viper.SetEnvPrefix("PDFCOMBINE")
	viper.AutomaticEnv()

	viper.SetDefault("directory", ".")
	viper.SetDefault("output", "combined_output.pdf")
	viper.SetDefault("sort", "numeric")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
