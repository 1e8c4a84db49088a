package extract

import (
	"regexp"
	"strings"

	"github.com/itsmostafa/mdindex/internal/markup"
)

// descriptionLimit caps the teaser extracted from a document's early body
// text; descriptionLines bounds how many leading lines are considered.
const (
	descriptionLimit = 150
	descriptionLines = 10
)

// descriptionSkipPrefixes mark lines that carry structure rather than
// prose: headings, toc directives and comment openers.
var descriptionSkipPrefixes = []string{"#", "@[toc]", "[toc]", "<!--"}

// fencedSpanPattern removes whole fenced code spans for word counting: a
// span runs from one backtick marker to the next, inclusive,
// non-overlapping.
var fencedSpanPattern = regexp.MustCompile("(?s)```.*?```")

// Description joins the first non-structural body lines into a short
// teaser, truncated to descriptionLimit characters with a trailing
// ellipsis. Returns "" when nothing qualifies.
func Description(text string) string {
	var kept []string

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines) && i < descriptionLines; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || hasAnyPrefix(line, descriptionSkipPrefixes) {
			continue
		}
		kept = append(kept, line)
	}
	if len(kept) == 0 {
		return ""
	}
	return truncateRunes(strings.Join(kept, " "), descriptionLimit) + "..."
}

// WordCount approximates document length: fenced code spans are dropped,
// links collapse to their label, and the remaining whitespace-delimited
// tokens are counted.
func WordCount(text string) int {
	text = fencedSpanPattern.ReplaceAllString(text, "")
	text = markup.StripLinkTargets(text)
	return len(strings.Fields(text))
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
