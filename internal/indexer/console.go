package indexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/mdindex/internal/corpus"
)

var (
	// titleStyle for bold highlighted values
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for recovered per-document failures
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// boxStyle for the run summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	// headerBoxStyle for the run header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// FormatHeader renders the run header with scan configuration.
func FormatHeader(w io.Writer, dir, indexFilename string, count int) {
	content := fmt.Sprintf("%s %s\n%s %s\n%s %s",
		dimStyle.Render("Directory:"), titleStyle.Render(dir),
		dimStyle.Render("Index:"), indexFilename,
		dimStyle.Render("Documents:"), successStyle.Render(strconv.Itoa(count)),
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatDocument renders one per-document progress line.
func FormatDocument(w io.Writer, s corpus.DocumentSummary, readErr error) {
	if readErr != nil {
		fmt.Fprintf(w, "%s %s %s\n",
			warnStyle.Render("!"),
			s.Filename,
			dimStyle.Render("(unreadable, filename title used)"),
		)
		return
	}
	fmt.Fprintf(w, "%s %s %s %s\n",
		successStyle.Render("✓"),
		s.Filename,
		dimStyle.Render("→"),
		titleStyle.Render(s.Title),
	)
}

// FormatRunSummary renders the closing summary box, including a short
// title-extraction sample of the first documents.
func FormatRunSummary(w io.Writer, result *Result, elapsed time.Duration) {
	line1 := fmt.Sprintf("%s %d  %s %s  %s %.1fs",
		dimStyle.Render("Documents:"), result.Documents,
		dimStyle.Render("Words:"), formatNumber(result.TotalWords),
		dimStyle.Render("Elapsed:"), elapsed.Seconds(),
	)
	line2 := fmt.Sprintf("%s %s",
		dimStyle.Render("Index:"), successStyle.Render(result.IndexPath),
	)

	content := titleStyle.Render("Index Generated") + "\n" + line1 + "\n" + line2

	for i, s := range result.Summaries {
		if i == 3 {
			content += "\n" + dimStyle.Render(fmt.Sprintf("... %d more", result.Documents-i))
			break
		}
		content += fmt.Sprintf("\n%s %s", dimStyle.Render(s.Filename+":"), s.Title)
	}

	fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatEmpty renders the notice for a directory without documents.
func FormatEmpty(w io.Writer, dir string) {
	msg := fmt.Sprintf("No markdown documents found in %s, nothing to index.", dir)
	fmt.Fprintln(w, dimStyle.Render(msg))
}

// FormatInspection renders per-document extraction results for inspect.
func FormatInspection(w io.Writer, summaries []corpus.DocumentSummary, outlineLimit int) {
	for _, s := range summaries {
		fmt.Fprintf(w, "%s %s\n", successStyle.Render("●"), titleStyle.Render(s.Filename))
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("Title:"), s.Title)
		fmt.Fprintf(w, "  %s %s words, %d sections\n",
			dimStyle.Render("Stats:"), formatNumber(s.WordCount), len(s.Outline))
		for i, entry := range s.Outline {
			if outlineLimit > 0 && i == outlineLimit {
				fmt.Fprintf(w, "    %s\n",
					dimStyle.Render(fmt.Sprintf("... %d more", len(s.Outline)-i)))
				break
			}
			fmt.Fprintf(w, "    %s%s\n", strings.Repeat("  ", entry.Level-1), entry.Text)
		}
		fmt.Fprintln(w)
	}
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
