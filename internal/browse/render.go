package browse

import (
	"strings"
	"unicode/utf8"
)

// Buffer layout: line 0 is the directory path, line 1 a rule of the same
// display width, line 2 the parent marker (also the cursor anchor for an
// empty directory), and one line per entry from HeaderLines on.
const (
	ParentLine  = 2
	HeaderLines = 3
)

// ParentMarker is the go-to-parent target line body.
const ParentMarker = "⠤"

// Rendering is the text layout produced from one entry list. LineToName and
// NameToLine are the two directions of the line↔name map; only entry lines
// appear in them.
type Rendering struct {
	Lines       []string
	LineToName  map[int]string
	NameToLine  map[string]int
	MarkedLines []int
	CursorLine  int
}

// Render maps an ordered entry list to its buffer layout. Marked names that
// no longer have a line are silently skipped. The cursor is placed on the
// gotoName entry if it is still present, else on the first entry line, else
// on the parent marker line when the directory is empty. A gotoName carrying
// a trailing separator (a directory name taken from a rendered line) matches
// its undecorated entry.
func Render(path string, entries []Entry, marked *MarkStore, gotoName string) Rendering {
	r := Rendering{
		Lines:      make([]string, 0, HeaderLines+len(entries)),
		LineToName: make(map[int]string, len(entries)),
		NameToLine: make(map[string]int, len(entries)),
	}

	r.Lines = append(r.Lines, path)
	r.Lines = append(r.Lines, strings.Repeat("—", utf8.RuneCountInString(path)))
	r.Lines = append(r.Lines, ParentMarker)

	for i, e := range entries {
		line := HeaderLines + i
		r.Lines = append(r.Lines, FormatLine(e))
		r.LineToName[line] = e.Name
		r.NameToLine[e.Name] = line
		if marked != nil && marked.Contains(e.Name) {
			r.MarkedLines = append(r.MarkedLines, line)
		}
	}

	r.CursorLine = ParentLine
	if len(entries) > 0 {
		r.CursorLine = HeaderLines
		if gotoName != "" {
			if line, ok := r.NameToLine[strings.TrimSuffix(gotoName, Sep)]; ok {
				r.CursorLine = line
			}
		}
	}

	return r
}

// Text joins the rendered lines into one buffer string.
func (r Rendering) Text() string {
	return strings.Join(r.Lines, "\n")
}

// EntryCount returns the number of entry lines.
func (r Rendering) EntryCount() int {
	return len(r.LineToName)
}

// IsEntryLine reports whether line holds an entry.
func (r Rendering) IsEntryLine(line int) bool {
	_, ok := r.LineToName[line]
	return ok
}

// NamesAt resolves buffer lines to entry names in line order, skipping lines
// that hold no entry.
func (r Rendering) NamesAt(lines []int) []string {
	var names []string
	for _, line := range lines {
		if name, ok := r.LineToName[line]; ok {
			names = append(names, name)
		}
	}
	return names
}
