package browse_test

import (
	"os"
	"path/filepath"
	"testing"

	"dired/internal/browse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T, names ...string) (*browse.View, string) {
	t.Helper()
	tmpDir := t.TempDir()
	for _, name := range names {
		mkfile(t, filepath.Join(tmpDir, name))
	}
	v, err := browse.NewView(tmpDir, false)
	require.NoError(t, err)
	return v, tmpDir
}

func TestViewTargetsPrecedence(t *testing.T) {
	v, _ := newTestView(t, "a.txt", "b.txt", "c.txt")

	cursorLines := []int{browse.HeaderLines} // cursor on first entry

	t.Run("falls back to selection when nothing is marked", func(t *testing.T) {
		assert.Equal(t, []string{"a.txt"}, v.Targets(cursorLines))
	})

	t.Run("marked names take priority over the selection", func(t *testing.T) {
		v.Marks().Apply(browse.Mark, []string{"c.txt"})
		assert.Equal(t, []string{"c.txt"}, v.Targets(cursorLines))
	})

	t.Run("non-entry line with no marks resolves to nothing", func(t *testing.T) {
		v.Marks().Clear()
		assert.Empty(t, v.Targets([]int{browse.ParentLine}))
	})
}

func TestViewRefreshPreservesMarksByName(t *testing.T) {
	v, tmpDir := newTestView(t, "a.txt", "b.txt")
	v.Marks().Apply(browse.Mark, []string{"a.txt", "b.txt"})

	// b.txt is renamed away externally.
	require.NoError(t, os.Rename(filepath.Join(tmpDir, "b.txt"), filepath.Join(tmpDir, "other.txt")))
	require.NoError(t, v.Refresh())

	assert.True(t, v.Marks().Contains("a.txt"), "surviving name stays marked")
	assert.False(t, v.Marks().Contains("b.txt"), "renamed-away name drops out, no error")
}

func TestViewRenameStateMachine(t *testing.T) {
	v, tmpDir := newTestView(t, "a.txt")

	assert.False(t, v.Renaming())

	session := v.BeginRename()
	require.NotNil(t, session)
	assert.True(t, v.Renaming())
	assert.Equal(t, []string{"a.txt"}, session.Before())

	t.Run("cancel discards with no filesystem effect", func(t *testing.T) {
		v.CancelRename()
		assert.False(t, v.Renaming())
		assert.FileExists(t, filepath.Join(tmpDir, "a.txt"))
	})

	t.Run("validation failure keeps rename mode active", func(t *testing.T) {
		mkfile(t, filepath.Join(tmpDir, "b.txt"))
		require.NoError(t, v.Refresh())
		require.NotNil(t, v.BeginRename())

		err := v.CommitRename([]string{"≡ same", "≡ same"})
		require.Error(t, err)
		assert.True(t, v.Renaming(), "rename mode stays active for correction")

		err = v.CommitRename([]string{"≡ only-one-line"})
		require.Error(t, err)
		assert.True(t, v.Renaming())
	})

	t.Run("successful commit leaves rename mode", func(t *testing.T) {
		require.NoError(t, v.CommitRename([]string{"≡ a2.txt", "≡ b2.txt"}))
		assert.False(t, v.Renaming())
		require.NoError(t, v.Refresh())
		assert.FileExists(t, filepath.Join(tmpDir, "a2.txt"))
		assert.FileExists(t, filepath.Join(tmpDir, "b2.txt"))
	})
}

func TestViewBeginRenameEmptyDirectory(t *testing.T) {
	v, _ := newTestView(t)
	assert.Nil(t, v.BeginRename(), "nothing to rename in an empty directory")
	assert.False(t, v.Renaming())
}

func TestViewParent(t *testing.T) {
	v, tmpDir := newTestView(t)
	assert.Equal(t, filepath.Dir(tmpDir), v.Parent())
}
