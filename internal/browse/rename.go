package browse

import (
	"os"
	"path/filepath"

	"dired/internal/errors"
	"dired/internal/log"
)

// RenameSession captures the ordered name list of a directory when rename
// mode is entered and, on commit, realizes the user's line edits as a
// cycle-safe sequence of filesystem renames.
type RenameSession struct {
	dir    string
	before []string
}

// NewRenameSession starts a session over the current entry order.
func NewRenameSession(dir string, entries []Entry) *RenameSession {
	before := make([]string, len(entries))
	for i, e := range entries {
		before[i] = e.Name
	}
	return &RenameSession{dir: dir, before: before}
}

// Before returns the baseline name list.
func (s *RenameSession) Before() []string {
	return append([]string(nil), s.before...)
}

// CommitLines strips decoration and whitespace from the edited buffer lines
// and commits the resulting name list.
func (s *RenameSession) CommitLines(lines []string) error {
	after := make([]string, len(lines))
	for i, line := range lines {
		after[i] = StripDecoration(line)
	}
	return s.Commit(after)
}

// Commit validates the edited name list against the baseline and applies the
// minimal set of renames. Changes are paired by line position. Duplicate
// detection covers every child of the directory, including entries the
// listing filter hides, so a rename onto a dotfile name is rejected rather
// than overwriting it. Validation failures (added/removed lines, duplicate
// names) abort with zero filesystem effect and leave the session usable for
// correction. A rename that fails mid-sequence is fatal to the commit;
// renames already applied stand, and a refresh reflects the real state.
func (s *RenameSession) Commit(after []string) error {
	if len(after) != len(s.before) {
		return errors.Newf(errors.LineCountMismatch,
			"you cannot add or remove lines (%d names, expected %d)", len(after), len(s.before))
	}

	seen := make(map[string]struct{}, len(after))
	for _, name := range after {
		if _, dup := seen[name]; dup {
			return errors.Newf(errors.DuplicateName, "there are duplicate filenames: %s", name)
		}
		seen[name] = struct{}{}
	}

	// existing holds everything actually in the directory, not just the
	// listed baseline. It seeds both the collision validation below and the
	// occupancy tracking during the rename sequence.
	children, err := os.ReadDir(s.dir)
	if err != nil {
		return classifyStatErr(s.dir, err)
	}
	existing := make(map[string]struct{}, len(children))
	for _, child := range children {
		existing[child.Name()] = struct{}{}
	}

	// A target that collides with a child outside the edited set will never
	// vacate; reject it before any rename runs.
	inBaseline := make(map[string]struct{}, len(s.before))
	for _, name := range s.before {
		inBaseline[name] = struct{}{}
	}
	for i, name := range after {
		if name == s.before[i] {
			continue
		}
		if _, scheduled := inBaseline[name]; scheduled {
			continue
		}
		if _, occupied := existing[name]; occupied {
			return errors.Newf(errors.DuplicateName, "there are duplicate filenames: %s", name)
		}
	}

	type change struct{ from, to string }
	var queue []change
	for i, b := range s.before {
		if a := after[i]; a != b {
			queue = append(queue, change{from: b, to: a})
		}
	}

	// existing tracks which names occupy the directory as the renames apply.
	// A change whose target name is still occupied gets its source parked
	// under a fresh temporary name and is revisited after the occupant has
	// moved out of the way; one temp hop per cycle member suffices for
	// arbitrary permutations.
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		to := c.to
		if _, occupied := existing[to]; occupied {
			tmp, err := tempName(s.dir)
			if err != nil {
				return err
			}
			queue = append(queue, change{from: tmp, to: c.to})
			to = tmp
		}

		log.Info("rename: %s -> %s", c.from, to)
		if err := os.Rename(filepath.Join(s.dir, c.from), filepath.Join(s.dir, to)); err != nil {
			return errors.New("rename failed", c.from, errors.OperationFailed, err)
		}
		delete(existing, c.from)
		existing[to] = struct{}{}
	}

	return nil
}

// tempName reserves a name guaranteed not to collide with anything in dir.
// The file backing the reservation is removed immediately; only the name is
// needed, and the rename that follows reclaims it.
func tempName(dir string) (string, error) {
	f, err := os.CreateTemp(dir, ".dired-rename-*")
	if err != nil {
		return "", errors.New("cannot allocate temporary name", dir, errors.OperationFailed, err)
	}
	name := filepath.Base(f.Name())
	f.Close()
	if err := os.Remove(f.Name()); err != nil {
		return "", errors.New("cannot release temporary name", f.Name(), errors.OperationFailed, err)
	}
	return name, nil
}
