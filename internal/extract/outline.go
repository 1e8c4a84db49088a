package extract

import (
	"regexp"
	"strings"

	"github.com/itsmostafa/mdindex/internal/markup"
)

// HeadingEntry is one detected heading with its nesting level and 1-based
// position in the source document.
type HeadingEntry struct {
	Level int
	Text  string
	Line  int
}

// headingPattern matches an ATX heading at line start: one to six markers
// followed by required whitespace and non-empty text. Backtracking on the
// marker count means a line matches exactly its own level.
var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Outline scans the whole document top to bottom and returns every heading
// outside fenced code regions, cleaned, in document order. The empty
// document yields an empty outline.
func Outline(text string) []HeadingEntry {
	var entries []HeadingEntry
	var fence markup.FenceTracker

	for i, line := range strings.Split(text, "\n") {
		if fence.Observe(line) || fence.Inside() {
			continue
		}
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entries = append(entries, HeadingEntry{
			Level: len(m[1]),
			Text:  markup.Clean(strings.TrimSpace(m[2])),
			Line:  i + 1,
		})
	}

	return entries
}
