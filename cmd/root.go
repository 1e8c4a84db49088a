package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/mdindex/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdindex",
	Short: "Generate an index document for a directory of markdown files",
	Long: `mdindex scans a directory of markdown documents, extracts a title and
outline from each one using layered heuristics (toc directives, headings,
plausible body lines, beautified filenames), and regenerates a single
aggregated index file with a listing table, per-document outlines and
corpus statistics.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("mdindex %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
