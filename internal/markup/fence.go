package markup

import "strings"

const fenceMarker = "```"

// FenceTracker tracks fenced code regions across a top-to-bottom line scan.
// A line whose trimmed content starts with a triple-backtick marker toggles
// the region and is itself never a content line. The zero value is ready to
// use and starts outside any region.
type FenceTracker struct {
	inside bool
}

// Observe feeds one line to the tracker. It reports true when the line is a
// fence delimiter; delimiter lines are consumed by the tracker and must not
// be examined as content.
func (t *FenceTracker) Observe(line string) bool {
	if strings.HasPrefix(strings.TrimSpace(line), fenceMarker) {
		t.inside = !t.inside
		return true
	}
	return false
}

// Inside reports whether content lines are currently within a fenced region.
func (t *FenceTracker) Inside() bool {
	return t.inside
}
