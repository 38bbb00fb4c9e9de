package browse

import (
	"os"
	"path/filepath"
	"strings"

	"dired/internal/errors"
)

// List reads a directory once and returns its children with all directories
// before all files, each group in the order the filesystem returned them.
// Symlinks are classified by their resolved target; broken links count as
// files. Hidden entries (dotfiles) are skipped unless showHidden is set.
func List(path string, showHidden bool) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, classifyStatErr(path, err)
	}
	if !info.IsDir() {
		return nil, errors.New("not a directory", path, errors.NotADirectory, nil)
	}

	children, err := os.ReadDir(path)
	if err != nil {
		return nil, classifyStatErr(path, err)
	}

	var dirs, files []Entry
	for _, child := range children {
		name := child.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if isDir(filepath.Join(path, name), child) {
			dirs = append(dirs, Entry{Name: name, Kind: Directory})
		} else {
			files = append(files, Entry{Name: name, Kind: File})
		}
	}

	return append(dirs, files...), nil
}

// isDir resolves the kind of one child, following symlinks to the target.
func isDir(path string, child os.DirEntry) bool {
	if child.Type()&os.ModeSymlink == 0 {
		return child.IsDir()
	}
	info, err := os.Stat(path)
	if err != nil {
		// Broken link; treat as a file so it can still be deleted/renamed.
		return false
	}
	return info.IsDir()
}

func classifyStatErr(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return errors.New("no such directory", path, errors.NotFound, err)
	case os.IsPermission(err):
		return errors.New("permission denied", path, errors.PermissionDenied, err)
	}
	return errors.New("cannot read directory", path, errors.OperationFailed, err)
}
