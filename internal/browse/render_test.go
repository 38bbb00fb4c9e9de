package browse_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"dired/internal/browse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []browse.Entry {
	return []browse.Entry{
		{Name: "docs", Kind: browse.Directory},
		{Name: "a.txt", Kind: browse.File},
		{Name: "b.txt", Kind: browse.File},
	}
}

func TestRenderLayout(t *testing.T) {
	path := "/home/user/project"
	r := browse.Render(path, sampleEntries(), nil, "")

	require.Len(t, r.Lines, browse.HeaderLines+3)
	assert.Equal(t, path, r.Lines[0])
	assert.Equal(t, utf8.RuneCountInString(path), utf8.RuneCountInString(r.Lines[1]))
	assert.Equal(t, strings.Repeat("—", len([]rune(path))), r.Lines[1])
	assert.Equal(t, browse.ParentMarker, r.Lines[browse.ParentLine])
	assert.Equal(t, "▸ docs"+browse.Sep, r.Lines[browse.HeaderLines])
	assert.Equal(t, "≡ a.txt", r.Lines[browse.HeaderLines+1])
}

func TestRenderLineNameMaps(t *testing.T) {
	r := browse.Render("/p", sampleEntries(), nil, "")

	assert.Equal(t, 3, r.EntryCount())
	for name, line := range r.NameToLine {
		assert.Equal(t, name, r.LineToName[line], "maps should be inverse")
	}
	assert.False(t, r.IsEntryLine(0))
	assert.False(t, r.IsEntryLine(browse.ParentLine))
	assert.True(t, r.IsEntryLine(browse.HeaderLines))
}

func TestRenderCursorPlacement(t *testing.T) {
	entries := sampleEntries()

	t.Run("default is first entry", func(t *testing.T) {
		r := browse.Render("/p", entries, nil, "")
		assert.Equal(t, browse.HeaderLines, r.CursorLine)
	})

	t.Run("goto places cursor on the entry", func(t *testing.T) {
		r := browse.Render("/p", entries, nil, "b.txt")
		assert.Equal(t, browse.HeaderLines+2, r.CursorLine)
	})

	t.Run("goto with trailing separator matches directory", func(t *testing.T) {
		r := browse.Render("/p", entries, nil, "docs"+browse.Sep)
		assert.Equal(t, browse.HeaderLines, r.CursorLine)
	})

	t.Run("vanished goto falls back to first entry", func(t *testing.T) {
		r := browse.Render("/p", entries, nil, "gone.txt")
		assert.Equal(t, browse.HeaderLines, r.CursorLine)
	})

	t.Run("empty directory anchors on the parent marker", func(t *testing.T) {
		r := browse.Render("/p", nil, nil, "anything")
		assert.Equal(t, browse.ParentLine, r.CursorLine)
	})
}

func TestRenderMarkedLines(t *testing.T) {
	marks := browse.NewMarkStore()
	marks.Apply(browse.Mark, []string{"a.txt", "no-longer-here.txt"})

	r := browse.Render("/p", sampleEntries(), marks, "")
	// Only names that still have a line are flagged; stale marks are skipped
	// silently.
	assert.Equal(t, []int{browse.HeaderLines + 1}, r.MarkedLines)
}

func TestRenderNamesAt(t *testing.T) {
	r := browse.Render("/p", sampleEntries(), nil, "")

	names := r.NamesAt([]int{0, browse.ParentLine, browse.HeaderLines, browse.HeaderLines + 2, 99})
	assert.Equal(t, []string{"docs", "b.txt"}, names, "non-entry lines resolve to nothing")
}
