package browse_test

import (
	"os"
	"path/filepath"
	"testing"

	"dired/internal/browse"
	"dired/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkfile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestListDirectoriesBeforeFiles(t *testing.T) {
	tmpDir := t.TempDir()
	mkfile(t, filepath.Join(tmpDir, "a.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "zdir"), 0755))
	mkfile(t, filepath.Join(tmpDir, "b.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "adir"), 0755))

	entries, err := browse.List(tmpDir, false)
	require.NoError(t, err)
	require.Len(t, entries, 4, "entry count should equal child count")

	seenFile := false
	for _, e := range entries {
		if e.IsDir() {
			assert.False(t, seenFile, "directory %s listed after a file", e.Name)
		} else {
			seenFile = true
		}
	}
}

func TestListHiddenEntries(t *testing.T) {
	tmpDir := t.TempDir()
	mkfile(t, filepath.Join(tmpDir, ".hidden"))
	mkfile(t, filepath.Join(tmpDir, "visible.txt"))

	entries, err := browse.List(tmpDir, false)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "visible.txt", entries[0].Name)

	entries, err = browse.List(tmpDir, true)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestListSymlinkClassification(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "realdir"), 0755))
	mkfile(t, filepath.Join(tmpDir, "realfile"))

	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "realdir"), filepath.Join(tmpDir, "dirlink")))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "realfile"), filepath.Join(tmpDir, "filelink")))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "brokenlink")))

	entries, err := browse.List(tmpDir, false)
	require.NoError(t, err)

	kinds := make(map[string]browse.Kind)
	for _, e := range entries {
		kinds[e.Name] = e.Kind
	}
	assert.Equal(t, browse.Directory, kinds["dirlink"], "link to directory classifies as directory")
	assert.Equal(t, browse.File, kinds["filelink"], "link to file classifies as file")
	assert.Equal(t, browse.File, kinds["brokenlink"], "broken link classifies as file")
}

func TestListErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := browse.List(filepath.Join(t.TempDir(), "nope"), false)
		assert.True(t, errors.IsNotFound(err), "expected NotFound, got %v", err)
	})

	t.Run("path is a file", func(t *testing.T) {
		tmpDir := t.TempDir()
		file := filepath.Join(tmpDir, "f.txt")
		mkfile(t, file)
		_, err := browse.List(file, false)
		assert.True(t, errors.IsNotADirectory(err), "expected NotADirectory, got %v", err)
	})
}
