package browse

import (
	"path/filepath"

	"dired/internal/errors"
)

// View is the live state bound to one displayed directory: the entry list as
// of the last refresh, the marked-name set, and the rename session while one
// is active. A view is owned by exactly one displayed buffer and is mutated
// only by the command currently executing against it.
type View struct {
	path       string
	entries    []Entry
	marks      *MarkStore
	showHidden bool
	rename     *RenameSession
}

// NewView creates a view on path (made absolute) and performs the initial
// refresh.
func NewView(path string, showHidden bool) (*View, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.New("invalid path", path, errors.NotFound, err)
	}
	v := &View{
		path:       filepath.Clean(abs),
		marks:      NewMarkStore(),
		showHidden: showHidden,
	}
	if err := v.Refresh(); err != nil {
		return nil, err
	}
	return v, nil
}

// Refresh re-lists the directory and prunes marks whose names disappeared.
func (v *View) Refresh() error {
	entries, err := List(v.path, v.showHidden)
	if err != nil {
		return err
	}
	v.entries = entries
	v.marks.Prune(entries)
	return nil
}

// Path returns the absolute directory path.
func (v *View) Path() string {
	return v.path
}

// Parent returns the parent directory path, or the path itself at the root.
func (v *View) Parent() string {
	return filepath.Dir(v.path)
}

// Entries returns the entry list as of the last refresh.
func (v *View) Entries() []Entry {
	return v.entries
}

// Marks returns the view's mark store.
func (v *View) Marks() *MarkStore {
	return v.marks
}

// Names returns the ordered raw names of all entries.
func (v *View) Names() []string {
	names := make([]string, len(v.entries))
	for i, e := range v.entries {
		names[i] = e.Name
	}
	return names
}

// Entry returns the entry called name, if present.
func (v *View) Entry(name string) (Entry, bool) {
	for _, e := range v.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Render produces the buffer layout for the current state, placing the
// cursor on gotoName when it is still present.
func (v *View) Render(gotoName string) Rendering {
	return Render(v.path, v.entries, v.marks, gotoName)
}

// Targets resolves the names a command operates on: the marked set when it
// is non-empty, else the entries on the given selection lines. The same
// precedence is used by delete and move.
func (v *View) Targets(selectedLines []int) []string {
	if v.marks.Len() > 0 {
		return v.marks.Names()
	}
	return v.Render("").NamesAt(selectedLines)
}

// Renaming reports whether the view is in rename mode. Delete, move and
// create are only defined while browsing.
func (v *View) Renaming() bool {
	return v.rename != nil
}

// BeginRename captures the baseline name list and enters rename mode.
// It is a no-op returning nil when the directory has no entries.
func (v *View) BeginRename() *RenameSession {
	if len(v.entries) == 0 {
		return nil
	}
	v.rename = NewRenameSession(v.path, v.entries)
	return v.rename
}

// CancelRename discards the baseline with no filesystem effect.
func (v *View) CancelRename() {
	v.rename = nil
}

// CommitRename commits the edited buffer lines spanning the entry region.
// On validation failure the session stays active so the user can correct the
// buffer; on success (or a mid-sequence rename failure, which is fatal to
// the commit) rename mode is left and the caller refreshes.
func (v *View) CommitRename(lines []string) error {
	if v.rename == nil {
		return errors.Newf(errors.OperationFailed, "not in rename mode")
	}
	err := v.rename.CommitLines(lines)
	if errors.IsLineCountMismatch(err) || errors.IsDuplicateName(err) {
		return err
	}
	v.rename = nil
	return err
}
