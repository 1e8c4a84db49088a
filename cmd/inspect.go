package cmd

import (
	"github.com/itsmostafa/mdindex/internal/config"
	"github.com/itsmostafa/mdindex/internal/indexer"
	"github.com/spf13/cobra"
)

var (
	inspectConfig  string
	inspectVerbose bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [dir]",
	Short: "Show extracted titles and outlines without writing the index",
	Long: `Run the extraction heuristics over a directory and print what the index
would record per document. Nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(inspectConfig)
		if err != nil {
			return err
		}
		if len(args) > 0 {
			cfg.Dir = args[0]
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		summaries, err := indexer.Inspect(indexer.Config{
			Dir:           cfg.Dir,
			IndexFilename: cfg.IndexFilename,
			Extensions:    cfg.Extensions,
			Exclude:       cfg.Exclude,
			Logger:        newLogger(inspectVerbose),
		})
		if err != nil {
			return err
		}

		indexer.FormatInspection(cmd.OutOrStdout(), summaries, cfg.OutlineLimit)
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectConfig, "config", "", "Path to a mdindex.yaml config file")
	inspectCmd.Flags().BoolVarP(&inspectVerbose, "verbose", "v", false, "Enable debug diagnostics on stderr")
	rootCmd.AddCommand(inspectCmd)
}
