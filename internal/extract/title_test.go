package extract

import (
	"strings"
	"testing"
)

func TestTitleTocDirective(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"at-toc wins over headings",
			"@[toc](My Title)\n\n# Heading One\n## Heading Two\n",
			"My Title",
		},
		{
			"bare toc form",
			"[toc](Another Title)\nbody\n",
			"Another Title",
		},
		{
			"comment toc form",
			"<!--toc--> Comment Title\nbody\n",
			"Comment Title",
		},
		{
			"spaced comment toc form",
			"<!-- toc --> Spaced Title\nbody\n",
			"Spaced Title",
		},
		{
			"case insensitive",
			"@[TOC](Loud Title)\n",
			"Loud Title",
		},
		{
			"surrounding parens stripped once",
			"@[toc]((Wrapped))\n",
			"Wrapped",
		},
		{
			"directive title not cleaned",
			"@[toc](Keep **stars**)\n",
			"Keep **stars**",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Title(tt.input, "doc.md")
			if result != tt.expected {
				t.Errorf("Title() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestTitleHeadings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"h1 beats earlier body line",
			"some intro body\n# Heading One\n",
			"Heading One",
		},
		{
			"fenced h1 ignored",
			"```\n# Title\n```\n# Heading One\n",
			"Heading One",
		},
		{
			"h1 markup cleaned",
			"# A **bold** [link](x)\n",
			"A bold link",
		},
		{
			"h2 fallback when no h1",
			"## Second Level\nbody\n",
			"Second Level",
		},
		{
			"h1 preferred over earlier h2",
			"## Second\n# First\n",
			"First",
		},
		{
			"empty cleaned h1 skipped",
			"# <!--x-->\n# Real Title\n",
			"Real Title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Title(tt.input, "doc.md")
			if result != tt.expected {
				t.Errorf("Title() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestTitlePlausibleLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"bold intro cleaned",
			"Some **bold** intro.\nmore body\n",
			"Some bold intro.",
		},
		{
			"skips structural lines",
			"| a | b |\n> quote\n- item\nActual intro line\n",
			"Actual intro line",
		},
		{
			"skips single-line comments",
			"<!-- generated -->\nReal first line\n",
			"Real first line",
		},
		{
			"long line truncated to 100",
			strings.Repeat("a", 120) + "\n",
			strings.Repeat("a", 100),
		},
		{
			"overlong line passed over",
			strings.Repeat("b", 160) + "\nShort line\n",
			"Short line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Title(tt.input, "doc.md")
			if result != tt.expected {
				t.Errorf("Title() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestTitleWindowBound(t *testing.T) {
	// A heading beyond the first 3000 characters must not be found; the
	// filename fallback applies.
	input := strings.Repeat("| filler row\n", 300) + "# Deep Heading\n"
	result := Title(input, "deep-doc.md")
	if result != "Deep Doc" {
		t.Errorf("Title() = %q, want filename fallback %q", result, "Deep Doc")
	}
}

func TestTitleWindowCountsCharacters(t *testing.T) {
	// The window is 3000 characters, not bytes: a heading past 3000 bytes
	// but within 3000 runes of multi-byte text must still be found.
	input := strings.Repeat("好", 1500) + "\n# 标题\n"
	result := Title(input, "deep-doc.md")
	if result != "标题" {
		t.Errorf("Title() = %q, want %q", result, "标题")
	}
}

func TestFilenameTitle(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"separators and version", "my-cool_post.v2.md", "My Cool Post V2"},
		{"full path", "/blogs/go-notes.md", "Go Notes"},
		{"single word", "readme.md", "Readme"},
		{"no extension", "notes", "Notes"},
		{"only separators", "---.md", "Untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilenameTitle(tt.path)
			if result != tt.expected {
				t.Errorf("FilenameTitle(%q) = %q, want %q", tt.path, result, tt.expected)
			}
		})
	}
}

func TestTitleEmptyDocument(t *testing.T) {
	result := Title("", "my-cool_post.v2.md")
	if result != "My Cool Post V2" {
		t.Errorf("Title(\"\") = %q, want %q", result, "My Cool Post V2")
	}
}
