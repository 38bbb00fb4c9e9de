package browse_test

import (
	"testing"

	"dired/internal/browse"

	"github.com/stretchr/testify/assert"
)

func TestFormatParseRoundTrip(t *testing.T) {
	entries := []browse.Entry{
		{Name: "src", Kind: browse.Directory},
		{Name: "main.go", Kind: browse.File},
		{Name: "with space.txt", Kind: browse.File},
		{Name: "dir.with.dots", Kind: browse.Directory},
		{Name: "≡weird", Kind: browse.File},
	}

	for _, e := range entries {
		line := browse.FormatLine(e)
		parsed, ok := browse.ParseLine(line)
		assert.True(t, ok, "rendered line %q should parse", line)
		assert.Equal(t, e, parsed, "round trip should preserve the entry")
		// Re-applying the same kind's decoration yields the original line.
		assert.Equal(t, line, browse.FormatLine(parsed))
	}
}

func TestParseLineRejectsNonEntryLines(t *testing.T) {
	for _, line := range []string{
		"/home/user/project", // path header
		"———————",            // rule
		"⠤",                  // parent marker
		"",
		"plain text",
	} {
		_, ok := browse.ParseLine(line)
		assert.False(t, ok, "line %q should not parse as an entry", line)
	}
}

func TestFormatLineDecoration(t *testing.T) {
	assert.Equal(t, "▸ src"+browse.Sep, browse.FormatLine(browse.Entry{Name: "src", Kind: browse.Directory}))
	assert.Equal(t, "≡ a.txt", browse.FormatLine(browse.Entry{Name: "a.txt", Kind: browse.File}))
}

func TestStripDecoration(t *testing.T) {
	assert.Equal(t, "src", browse.StripDecoration("▸ src"+browse.Sep))
	assert.Equal(t, "a.txt", browse.StripDecoration("≡ a.txt"))
	assert.Equal(t, "a.txt", browse.StripDecoration("  ≡ a.txt  "))
	// A name retyped without decoration still commits.
	assert.Equal(t, "bare-name", browse.StripDecoration("bare-name"))
}
