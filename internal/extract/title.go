// Package extract derives titles, outlines, descriptions and word counts
// from markdown document text using layered pattern-matching heuristics.
// All functions take explicit text/path inputs and never touch the
// filesystem.
package extract

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/itsmostafa/mdindex/internal/markup"
)

const (
	// titleWindow bounds how far into a document the title heuristics
	// look. Titles are assumed to appear near the top.
	titleWindow = 3000

	// plausibleLineMax disqualifies body lines too long to be a title;
	// plausibleLineTruncate caps what the heuristic returns.
	plausibleLineMax      = 150
	plausibleLineTruncate = 100
)

// tocPatterns match explicit table-of-contents directives carrying a title,
// in priority order. Directive titles are taken as-is, not cleaned.
var tocPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)@\[toc\]\s*\(([^)]+)\)`),
	regexp.MustCompile(`(?i)\[toc\]\s*\(([^)]+)\)`),
	regexp.MustCompile(`(?i)<!--toc-->\s*([^<]+)`),
	regexp.MustCompile(`(?i)<!--\s*toc\s*-->\s*([^<]+)`),
}

var (
	h1Pattern        = regexp.MustCompile(`^#\s+(.+)$`)
	h2Pattern        = regexp.MustCompile(`^##\s+(.+)$`)
	parenEdgePattern = regexp.MustCompile(`^\(|\)$`)
)

// titleStep is one heuristic in the fallback chain. It scans the title
// window and reports whether it produced a usable title.
type titleStep func(window string) (string, bool)

// titleSteps is the ordered fallback chain; the first step to succeed wins.
// The beautified filename is the terminal fallback and lives outside the
// chain because it cannot fail.
var titleSteps = []titleStep{
	tocDirectiveTitle,
	headingTitle(h1Pattern),
	headingTitle(h2Pattern),
	plausibleLineTitle,
}

// Title returns the best-guess title for a document. Each heuristic scans
// only the first titleWindow characters; when all of them come up empty the
// filename decides, so the result is never empty. Callers with an unreadable
// document should use FilenameTitle directly.
func Title(text, path string) string {
	window := headWindow(text, titleWindow)
	for _, step := range titleSteps {
		if title, ok := step(window); ok {
			return title
		}
	}
	return FilenameTitle(path)
}

// tocDirectiveTitle looks for an explicit toc directive. A matched but
// empty title falls through to the next directive form.
func tocDirectiveTitle(window string) (string, bool) {
	for _, pattern := range tocPatterns {
		m := pattern.FindStringSubmatch(window)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[1])
		title = parenEdgePattern.ReplaceAllString(title, "")
		if title != "" {
			return title, true
		}
	}
	return "", false
}

// headingTitle returns a step that scans for the first heading matching
// pattern outside fenced code regions, restarting from the top of the
// window. Headings that clean down to nothing are skipped.
func headingTitle(pattern *regexp.Regexp) titleStep {
	return func(window string) (string, bool) {
		var fence markup.FenceTracker
		for _, line := range strings.Split(window, "\n") {
			if fence.Observe(line) || fence.Inside() {
				continue
			}
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if title := markup.Clean(m[1]); title != "" {
				return title, true
			}
		}
		return "", false
	}
}

// plausibleLineTitle guesses a title from the first body line that does not
// look like a table row, quote, list item, code marker or comment. This is
// a best-effort guess, not a semantic heading: lines at or over
// plausibleLineMax characters after cleaning are passed over.
func plausibleLineTitle(window string) (string, bool) {
	var fence markup.FenceTracker
	for _, raw := range strings.Split(window, "\n") {
		line := strings.TrimSpace(raw)
		if fence.Observe(line) || fence.Inside() || line == "" {
			continue
		}
		if strings.ContainsAny(line[:1], "|>-*+`") {
			continue
		}
		if strings.HasPrefix(line, "<!--") && strings.HasSuffix(line, "-->") {
			continue
		}
		cleaned := markup.Clean(line)
		if cleaned != "" && utf8.RuneCountInString(cleaned) < plausibleLineMax {
			return truncateRunes(cleaned, plausibleLineTruncate), true
		}
	}
	return "", false
}

var filenameSeparators = strings.NewReplacer("-", " ", "_", " ", ".", " ")

// FilenameTitle beautifies a filename into a displayable title: the
// extension is dropped, separators become spaces and each word is
// capitalized. Terminal fallback of the title chain; never returns "".
func FilenameTitle(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	words := strings.Fields(filenameSeparators.Replace(name))
	for i, word := range words {
		words[i] = capitalize(word)
	}
	if len(words) == 0 {
		return "Untitled"
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// headWindow returns the first limit characters of text. The bound is in
// runes, not bytes, so multi-byte documents see the same window depth as
// ASCII ones.
func headWindow(text string, limit int) string {
	seen := 0
	for i := range text {
		if seen == limit {
			return text[:i]
		}
		seen++
	}
	return text
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
