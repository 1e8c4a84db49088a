package cmd

import (
	"log/slog"
	"os"

	"github.com/itsmostafa/mdindex/internal/config"
	"github.com/itsmostafa/mdindex/internal/indexer"
	"github.com/spf13/cobra"
)

var (
	generateOutput  string
	generateConfig  string
	generateForce   bool
	generateQuiet   bool
	generateVerbose bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [dir]",
	Short: "Scan a directory and regenerate its index document",
	Long: `Scan a directory of markdown documents and regenerate the index file.
The previous index content is fully replaced; the index file itself is
never treated as a source document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(generateConfig)
		if err != nil {
			return err
		}
		if len(args) > 0 {
			cfg.Dir = args[0]
		}
		if generateOutput != "" {
			cfg.IndexFilename = generateOutput
		}
		if generateForce {
			cfg.WriteEmpty = true
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		_, err = indexer.Run(indexer.Config{
			Dir:           cfg.Dir,
			IndexFilename: cfg.IndexFilename,
			Extensions:    cfg.Extensions,
			Exclude:       cfg.Exclude,
			OutlineLimit:  cfg.OutlineLimit,
			WriteEmpty:    cfg.WriteEmpty,
			Quiet:         generateQuiet,
			Output:        cmd.OutOrStdout(),
			Logger:        newLogger(generateVerbose),
		})
		return err
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Index filename to write (default init.md)")
	generateCmd.Flags().StringVar(&generateConfig, "config", "", "Path to a mdindex.yaml config file")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Write a placeholder index even when no documents are found")
	generateCmd.Flags().BoolVarP(&generateQuiet, "quiet", "q", false, "Suppress console progress output")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Enable debug diagnostics on stderr")
	rootCmd.AddCommand(generateCmd)
}

// newLogger builds the diagnostics channel: JSON on stderr, warnings only
// unless verbose is set.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
