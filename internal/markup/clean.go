// Package markup strips inline markdown decoration from single lines of
// text and classifies lines against fenced code regions. It is not a
// markdown parser: everything here is line-local pattern matching.
package markup

import (
	"regexp"
	"strings"
)

// Inline patterns, in the order Clean applies them. Link rewriting must run
// before any generic bracket handling, and the double-delimiter emphasis
// form before the single one so bold text is not truncated. Every pattern
// requires a matching closing delimiter on the same line; stray delimiters
// stay literal.
var (
	linkPattern    = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	imagePattern   = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	boldPattern    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern  = regexp.MustCompile(`\*([^*]+)\*`)
	codePattern    = regexp.MustCompile("`([^`]+)`")
	strikePattern  = regexp.MustCompile(`~~([^~]+)~~`)
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
	commentPattern = regexp.MustCompile(`<!--[^>]+-->`)
	spacesPattern  = regexp.MustCompile(`\s+`)
)

// Clean strips inline markdown decoration from text, leaving plain prose:
// links keep their label, images disappear, emphasis/code/strikethrough
// keep their content, tag- and comment-shaped markup is removed, and runs
// of whitespace collapse to single spaces.
func Clean(text string) string {
	if text == "" {
		return text
	}

	text = linkPattern.ReplaceAllString(text, "$1")
	text = imagePattern.ReplaceAllString(text, "")
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = codePattern.ReplaceAllString(text, "$1")
	text = strikePattern.ReplaceAllString(text, "$1")
	text = tagPattern.ReplaceAllString(text, "")
	text = commentPattern.ReplaceAllString(text, "")

	return strings.TrimSpace(spacesPattern.ReplaceAllString(text, " "))
}

// StripLinkTargets rewrites [label](target) links to their label without
// touching any other markup.
func StripLinkTargets(text string) string {
	return linkPattern.ReplaceAllString(text, "$1")
}
