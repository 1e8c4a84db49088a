// Package indexer orchestrates one index generation pass: scan the
// directory, summarize each document, render the report and atomically
// replace the index file.
package indexer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/itsmostafa/mdindex/internal/corpus"
	"github.com/itsmostafa/mdindex/internal/scan"
)

// Config holds one run's settings.
type Config struct {
	Dir           string
	IndexFilename string
	Extensions    []string
	Exclude       []string
	OutlineLimit  int

	// WriteEmpty writes a placeholder index when the directory holds no
	// documents instead of skipping the run.
	WriteEmpty bool

	// Quiet suppresses per-document console progress.
	Quiet bool

	// Output receives console output; defaults to stdout.
	Output io.Writer

	// Logger receives diagnostics; defaults to slog.Default().
	Logger *slog.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Result reports what one run produced.
type Result struct {
	IndexPath  string
	Documents  int
	TotalWords int

	// Skipped is set when the directory held no documents and no index
	// was written.
	Skipped bool

	Summaries []corpus.DocumentSummary
}

// Run executes one full generation pass. Per-document read failures are
// recovered (the document keeps filename-derived metadata) and logged;
// scan or write failures abort the run without leaving a partial index.
func Run(cfg Config) (*Result, error) {
	cfg = withDefaults(cfg)
	log := cfg.Logger.With("run_id", uuid.New().String())
	start := cfg.Now()

	docs, err := scan.Dir(cfg.Dir, scan.Options{
		Extensions: cfg.Extensions,
		Exclude:    append([]string{cfg.IndexFilename}, cfg.Exclude...),
	})
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 && !cfg.WriteEmpty {
		log.Info("no documents found, skipping index generation", "dir", cfg.Dir)
		if !cfg.Quiet {
			FormatEmpty(cfg.Output, cfg.Dir)
		}
		return &Result{Skipped: true}, nil
	}

	if !cfg.Quiet {
		FormatHeader(cfg.Output, cfg.Dir, cfg.IndexFilename, len(docs))
	}

	summaries := summarize(docs, cfg, log)

	report := corpus.BuildReport(summaries, corpus.ReportOptions{
		Directory:    displayName(cfg.Dir),
		GeneratedAt:  cfg.Now(),
		OutlineLimit: cfg.OutlineLimit,
	})

	indexPath := filepath.Join(cfg.Dir, cfg.IndexFilename)
	if err := writeAtomic(indexPath, report); err != nil {
		return nil, fmt.Errorf("write index %s: %w", indexPath, err)
	}

	result := &Result{
		IndexPath: indexPath,
		Documents: len(summaries),
		Summaries: summaries,
	}
	for _, s := range summaries {
		result.TotalWords += s.WordCount
	}

	log.Info("index generated",
		"path", indexPath,
		"documents", result.Documents,
		"total_words", result.TotalWords,
	)
	if !cfg.Quiet {
		FormatRunSummary(cfg.Output, result, cfg.Now().Sub(start))
	}
	return result, nil
}

// Inspect summarizes the directory's documents without writing anything.
func Inspect(cfg Config) ([]corpus.DocumentSummary, error) {
	cfg = withDefaults(cfg)
	log := cfg.Logger.With("run_id", uuid.New().String())

	docs, err := scan.Dir(cfg.Dir, scan.Options{
		Extensions: cfg.Extensions,
		Exclude:    append([]string{cfg.IndexFilename}, cfg.Exclude...),
	})
	if err != nil {
		return nil, err
	}
	cfg.Quiet = true // inspection renders its own view
	return summarize(docs, cfg, log), nil
}

func summarize(docs []scan.Document, cfg Config, log *slog.Logger) []corpus.DocumentSummary {
	summaries := make([]corpus.DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		text, readErr := scan.Load(doc)
		if readErr != nil {
			log.Warn("document unreadable, keeping filename metadata only",
				"file", doc.Filename, "error", readErr)
		}

		s := corpus.Summarize(doc.Filename, doc.Path, text, doc.Size, doc.ModTime, readErr)
		summaries = append(summaries, s)

		log.Debug("document summarized",
			"file", s.Filename,
			"title", s.Title,
			"headings", len(s.Outline),
			"words", s.WordCount,
		)
		if !cfg.Quiet {
			FormatDocument(cfg.Output, s, readErr)
		}
	}
	return summaries
}

// writeAtomic replaces path's content in one step: the report is written to
// a temp file in the same directory and renamed over the target, so readers
// never observe a half-written index.
func writeAtomic(path, content string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".mdindex-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func withDefaults(cfg Config) Config {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return cfg
}

func displayName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return filepath.Base(abs)
}
