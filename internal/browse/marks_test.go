package browse_test

import (
	"testing"

	"dired/internal/browse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkStoreBasics(t *testing.T) {
	m := browse.NewMarkStore()

	m.Apply(browse.Mark, []string{"a.txt", "b.txt"})
	assert.True(t, m.Contains("a.txt"))
	assert.Equal(t, []string{"a.txt", "b.txt"}, m.Names())

	t.Run("marking is idempotent", func(t *testing.T) {
		m.Apply(browse.Mark, []string{"a.txt"})
		assert.True(t, m.Contains("a.txt"))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("toggle twice restores state", func(t *testing.T) {
		m.Apply(browse.Toggle, []string{"a.txt"})
		assert.False(t, m.Contains("a.txt"))
		m.Apply(browse.Toggle, []string{"a.txt"})
		assert.True(t, m.Contains("a.txt"))
	})

	t.Run("unmark", func(t *testing.T) {
		m.Apply(browse.Unmark, []string{"a.txt"})
		assert.False(t, m.Contains("a.txt"))
	})

	t.Run("zero targets is a no-op", func(t *testing.T) {
		before := m.Len()
		m.Apply(browse.Mark, nil)
		assert.Equal(t, before, m.Len())
	})

	m.Clear()
	assert.Equal(t, 0, m.Len())
}

func TestMatchPattern(t *testing.T) {
	m := browse.NewMarkStore()
	names := []string{"a.txt", "b.txt", "c.jpg", "README"}

	t.Run("bare extension becomes a suffix filter", func(t *testing.T) {
		pred, err := browse.MatchPattern("txt")
		require.NoError(t, err)
		m.Apply(pred, names)
		assert.Equal(t, []string{"a.txt", "b.txt"}, m.Names())
	})

	t.Run("pattern keeps prior marks", func(t *testing.T) {
		pred, err := browse.MatchPattern(".jpg")
		require.NoError(t, err)
		m.Apply(pred, names)
		assert.Equal(t, []string{"a.txt", "b.txt", "c.jpg"}, m.Names())
	})

	t.Run("glob metacharacters pass through", func(t *testing.T) {
		m.Clear()
		pred, err := browse.MatchPattern("[ab].*")
		require.NoError(t, err)
		m.Apply(pred, names)
		assert.Equal(t, []string{"a.txt", "b.txt"}, m.Names())
	})

	t.Run("invalid pattern errors", func(t *testing.T) {
		_, err := browse.MatchPattern("[")
		assert.Error(t, err)
	})
}

func TestMarkStorePrune(t *testing.T) {
	m := browse.NewMarkStore()
	m.Apply(browse.Mark, []string{"a.txt", "gone.txt"})

	m.Prune([]browse.Entry{{Name: "a.txt", Kind: browse.File}})

	assert.True(t, m.Contains("a.txt"), "surviving name stays marked")
	assert.False(t, m.Contains("gone.txt"), "vanished name drops out silently")
}
