package corpus

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// timeFormat renders modification times at minute precision.
	timeFormat = "2006-01-02 15:04"

	// generatedFormat stamps the report header.
	generatedFormat = "2006-01-02 15:04:05"

	// noUpdatePlaceholder fills the most-recent-update field for an empty
	// document set.
	noUpdatePlaceholder = "n/a"
)

// ReportOptions control rendering of the aggregated index document.
type ReportOptions struct {
	// Directory is the display name of the scanned directory.
	Directory string

	// GeneratedAt stamps the report header.
	GeneratedAt time.Time

	// OutlineLimit caps how many outline entries each detail section
	// shows before the omission note.
	OutlineLimit int
}

// BuildReport renders the complete index document: header, listing table,
// per-document detail sections and the trailing statistics block. Documents
// are ordered most recently modified first; ties keep their input order.
// The input slice is not modified.
func BuildReport(summaries []DocumentSummary, opts ReportOptions) string {
	docs := make([]DocumentSummary, len(summaries))
	copy(docs, summaries)
	// Modification times compare at minute precision, the same granularity
	// the report renders; documents modified within the same minute keep
	// their input order.
	sort.SliceStable(docs, func(i, j int) bool {
		a := docs[i].ModifiedAt.Truncate(time.Minute)
		b := docs[j].ModifiedAt.Truncate(time.Minute)
		return a.After(b)
	})

	var sb strings.Builder
	writeHeader(&sb, docs, opts)
	writeListing(&sb, docs)
	writeDetails(&sb, docs, opts.OutlineLimit)
	writeStatistics(&sb, docs)
	return sb.String()
}

func writeHeader(sb *strings.Builder, docs []DocumentSummary, opts ReportOptions) {
	sb.WriteString("# 📚 Document Index\n\n")
	fmt.Fprintf(sb, "> 🕒 Generated at %s\n", opts.GeneratedAt.Format(generatedFormat))
	fmt.Fprintf(sb, "> 📁 Directory: `%s`\n", opts.Directory)
	fmt.Fprintf(sb, "> 📊 Total: **%d** documents\n\n", len(docs))
	sb.WriteString("---\n\n")
}

func writeListing(sb *strings.Builder, docs []DocumentSummary) {
	sb.WriteString("## 📋 Overview\n\n")
	sb.WriteString("| # | Title | File | Updated | Words | Size | Link |\n")
	sb.WriteString("|---|-------|------|---------|-------|------|------|\n")
	for i, doc := range docs {
		fmt.Fprintf(sb, "| %d | **%s** | `%s` | %s | %s | %sKB | [read](./%s) |\n",
			i+1,
			doc.Title,
			doc.Filename,
			doc.ModifiedAt.Format(timeFormat),
			formatNumber(doc.WordCount),
			formatSize(doc.SizeKB),
			doc.Filename,
		)
	}
	sb.WriteString("\n---\n\n")
}

func writeDetails(sb *strings.Builder, docs []DocumentSummary, outlineLimit int) {
	sb.WriteString("## 📄 Details\n\n")
	for _, doc := range docs {
		fmt.Fprintf(sb, "### [%s](./%s)\n\n", doc.Title, doc.Filename)
		fmt.Fprintf(sb, "> 📝 **File**: `%s`\n", doc.Filename)
		fmt.Fprintf(sb, "> 🕒 **Updated**: %s\n", doc.ModifiedAt.Format(timeFormat))
		fmt.Fprintf(sb, "> 📊 **Stats**: %s words, %sKB\n\n",
			formatNumber(doc.WordCount), formatSize(doc.SizeKB))

		if doc.Description != "" {
			fmt.Fprintf(sb, "**Summary**: %s\n\n", doc.Description)
		}

		writeOutline(sb, doc, outlineLimit)
		sb.WriteString("\n---\n\n")
	}
}

func writeOutline(sb *strings.Builder, doc DocumentSummary, limit int) {
	if len(doc.Outline) == 0 {
		sb.WriteString("> *(this document has no sections)*\n")
		return
	}

	sb.WriteString("**Outline**:\n\n")
	shown := doc.Outline
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, entry := range shown {
		indent := strings.Repeat("  ", entry.Level-1)
		fmt.Fprintf(sb, "%s- %s\n", indent, entry.Text)
	}
	if omitted := len(doc.Outline) - len(shown); omitted > 0 {
		fmt.Fprintf(sb, "  ... %d more sections omitted\n", omitted)
	}
}

func writeStatistics(sb *strings.Builder, docs []DocumentSummary) {
	totalWords := 0
	totalSize := 0.0
	for _, doc := range docs {
		totalWords += doc.WordCount
		totalSize += doc.SizeKB
	}

	// Floor average; defined as zero for the empty set.
	avgWords := 0
	if len(docs) > 0 {
		avgWords = totalWords / len(docs)
	}

	lastUpdated := noUpdatePlaceholder
	if len(docs) > 0 {
		lastUpdated = docs[0].ModifiedAt.Format(timeFormat)
	}

	sb.WriteString("## 📊 Statistics\n\n")
	fmt.Fprintf(sb, "- **Documents**: %d\n", len(docs))
	fmt.Fprintf(sb, "- **Total words**: %s\n", formatNumber(totalWords))
	fmt.Fprintf(sb, "- **Total size**: %.1f KB\n", totalSize)
	fmt.Fprintf(sb, "- **Average words**: %s per document\n", formatNumber(avgWords))
	fmt.Fprintf(sb, "- **Last updated**: %s\n", lastUpdated)
}

// formatNumber adds commas to large numbers for readability.
func formatNumber(n int) string {
	if n < 1000 {
		return strconv.Itoa(n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%d,%03d", n/1000, n%1000)
	}
	return fmt.Sprintf("%d,%03d,%03d", n/1000000, (n/1000)%1000, n%1000)
}

// formatSize renders a size already rounded to two decimals without
// trailing zeros.
func formatSize(kb float64) string {
	return strconv.FormatFloat(kb, 'f', -1, 64)
}
