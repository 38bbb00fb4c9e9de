// Package browse implements the core of the directory editor: listing a
// directory as an ordered entry sequence, rendering it as editable text,
// mark/selection bookkeeping, batch file operations and the rename-by-diff
// commit algorithm. The presentation layer (internal/tui) consumes this
// package and owns everything terminal-related.
package browse

import (
	"os"
	"strings"
)

// Kind classifies one directory child.
type Kind int

const (
	File Kind = iota
	Directory
)

// Kind markers occupy a fixed two-rune prefix on every entry line. The raw
// name is recovered by stripping the prefix (and, for directories, the
// trailing path separator).
const (
	markerDirectory = "▸ "
	markerFile      = "≡ "
)

// Sep is the path separator appended to rendered directory names.
var Sep = string(os.PathSeparator)

// Entry is one filesystem child. Entries are created fresh on every listing
// pass and never mutated.
type Entry struct {
	Name string
	Kind Kind
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == Directory
}

// FormatLine renders an entry as its buffer line: kind marker, raw name, and
// a trailing separator for directories.
func FormatLine(e Entry) string {
	if e.IsDir() {
		return markerDirectory + e.Name + Sep
	}
	return markerFile + e.Name
}

// ParseLine is the inverse of FormatLine. It recovers the entry from a
// rendered line, reporting false for lines that are not entry lines (the
// header, the rule, the parent marker).
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimRight(line, " \t")
	switch {
	case strings.HasPrefix(line, markerDirectory):
		name := strings.TrimPrefix(line, markerDirectory)
		name = strings.TrimSuffix(name, Sep)
		if name == "" {
			return Entry{}, false
		}
		return Entry{Name: name, Kind: Directory}, true
	case strings.HasPrefix(line, markerFile):
		name := strings.TrimPrefix(line, markerFile)
		if name == "" {
			return Entry{}, false
		}
		return Entry{Name: name, Kind: File}, true
	}
	return Entry{}, false
}

// StripDecoration removes the kind-marker prefix and trailing separator from
// an edited buffer line, trimming surrounding whitespace. Lines without a
// marker are returned trimmed as-is, so a name the user retyped from scratch
// still commits.
func StripDecoration(line string) string {
	line = strings.TrimSpace(line)
	if e, ok := ParseLine(line); ok {
		return e.Name
	}
	return line
}
