// Package scan lists and loads the source documents of one directory. It
// is the only package that touches the filesystem for input; the extraction
// core works on the text it hands over.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Document identifies one eligible source file before its content is read.
type Document struct {
	Filename string
	Path     string
	Size     int64
	ModTime  time.Time
}

// Options control which directory entries become index candidates.
type Options struct {
	// Extensions are the eligible file extensions, lowercase with leading
	// dot.
	Extensions []string

	// Exclude lists exact filenames to skip. The index file itself must
	// always be excluded: it is the output target, not an input.
	Exclude []string
}

// Dir lists the eligible documents in dir in lexical filename order. It
// does not recurse and does not read file contents.
func Dir(dir string, opts Options) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !hasExtension(name, opts.Extensions) || excluded(name, opts.Exclude) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Raced away between listing and stat; nothing to index.
			continue
		}
		docs = append(docs, Document{
			Filename: name,
			Path:     filepath.Join(dir, name),
			Size:     info.Size(),
			ModTime:  info.ModTime(),
		})
	}
	return docs, nil
}

// Load reads a document's full content. Invalid UTF-8 is reported as an
// error so the caller can fall back to filename-only metadata.
func Load(doc Document) (string, error) {
	data, err := os.ReadFile(doc.Path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: content is not valid UTF-8", doc.Filename)
	}
	return string(data), nil
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func excluded(name string, exclude []string) bool {
	for _, e := range exclude {
		if name == e {
			return true
		}
	}
	return false
}
