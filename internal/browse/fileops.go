package browse

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"dired/internal/errors"
	"dired/internal/log"
)

// CreateEntry creates an empty file or directory called name under dir,
// creating missing intermediate directories. It fails with AlreadyExists if
// the target path exists, creating nothing. The created path is returned so
// the caller can position the cursor on it.
func CreateEntry(dir, name string, kind Kind) (string, error) {
	target := filepath.Join(dir, name)
	if _, err := os.Stat(target); err == nil {
		return "", errors.New("already exists", target, errors.AlreadyExists, nil)
	} else if !os.IsNotExist(err) {
		return "", errors.New("cannot stat target", target, errors.OperationFailed, err)
	}

	if kind == Directory {
		if err := os.MkdirAll(target, 0755); err != nil {
			return "", errors.New("cannot create directory", target, errors.OperationFailed, err)
		}
		log.Debug("created directory %s", target)
		return target, nil
	}

	if parent := filepath.Dir(target); parent != dir {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return "", errors.New("cannot create parent directory", parent, errors.OperationFailed, err)
		}
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return "", errors.New("cannot create file", target, errors.OperationFailed, err)
	}
	f.Close()
	log.Debug("created file %s", target)
	return target, nil
}

// Delete removes the named children of dir, recursively for directories.
// Deletions already applied when a later one fails are not rolled back; the
// error is returned and a refresh shows the true state.
func Delete(dir string, names []string) error {
	for _, name := range names {
		target := filepath.Join(dir, name)
		info, err := os.Lstat(target)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.New("no such entry", target, errors.NotFound, err)
			}
			return errors.New("cannot stat entry", target, errors.OperationFailed, err)
		}

		if info.IsDir() {
			err = os.RemoveAll(target)
		} else {
			err = os.Remove(target)
		}
		if err != nil {
			return errors.New("cannot delete", target, errors.OperationFailed, err)
		}
		log.Debug("deleted %s", target)
	}
	return nil
}

// Move moves the named children of dir into destDir, which may be relative
// to dir. It fails with NotADirectory before touching anything if the
// destination does not resolve to an existing directory. A source whose
// normalized path equals the destination is silently skipped, so a marked
// directory is never moved into itself; the comparison folds case on
// platforms whose default filesystems do. Moving into the viewed directory
// itself is a no-op.
func Move(dir string, names []string, destDir string) error {
	if !filepath.IsAbs(destDir) {
		destDir = filepath.Join(dir, destDir)
	}
	destDir = filepath.Clean(destDir)

	info, err := os.Stat(destDir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New("not a valid directory", destDir, errors.NotADirectory, err)
		}
		return errors.New("cannot stat destination", destDir, errors.OperationFailed, err)
	}
	if !info.IsDir() {
		return errors.New("not a valid directory", destDir, errors.NotADirectory, nil)
	}

	if samePath(destDir, filepath.Clean(dir)) {
		return nil
	}

	for _, name := range names {
		src := filepath.Clean(filepath.Join(dir, name))
		if samePath(src, destDir) {
			log.Debug("skipping self-move of %s", src)
			continue
		}
		dest := filepath.Join(destDir, filepath.Base(src))
		if err := os.Rename(src, dest); err != nil {
			return errors.New("cannot move", src, errors.OperationFailed, err)
		}
		log.Debug("moved %s -> %s", src, dest)
	}
	return nil
}

// samePath reports whether two cleaned paths name the same location. The
// default filesystems on macOS and Windows are case-insensitive, so the
// comparison folds case there.
func samePath(a, b string) bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return strings.EqualFold(a, b)
	}
	return a == b
}
