// Package corpus assembles per-document summaries and renders the
// aggregated index report for a collection of markdown documents.
package corpus

import (
	"math"
	"time"

	"github.com/itsmostafa/mdindex/internal/extract"
)

// DocumentSummary aggregates everything the index records about one source
// document. Values are computed once per generation pass and never mutated.
type DocumentSummary struct {
	Filename    string
	Path        string
	Title       string
	ModifiedAt  time.Time
	SizeKB      float64
	Description string
	WordCount   int
	Outline     []extract.HeadingEntry
}

// Summarize combines the extraction heuristics with filesystem metadata
// into one summary. A non-nil readErr marks the document unreadable: the
// title falls back to the beautified filename and every text-derived field
// stays zero, so one bad document never aborts the report.
func Summarize(filename, path, text string, sizeBytes int64, modifiedAt time.Time, readErr error) DocumentSummary {
	s := DocumentSummary{
		Filename:   filename,
		Path:       path,
		ModifiedAt: modifiedAt,
		SizeKB:     math.Round(float64(sizeBytes)/1024*100) / 100,
	}

	if readErr != nil {
		s.Title = extract.FilenameTitle(path)
		return s
	}

	s.Title = extract.Title(text, path)
	s.Outline = extract.Outline(text)
	s.Description = extract.Description(text)
	s.WordCount = extract.WordCount(text)
	return s
}
