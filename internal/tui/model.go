package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"dired/internal/browse"
	"dired/internal/config"
	"dired/internal/watch"
)

type mode int

const (
	modeBrowse mode = iota
	modeRename
	modePrompt
	modeConfirm
)

type promptKind int

const (
	promptNone promptKind = iota
	promptMoveDest
	promptPattern
	promptNewFile
	promptNewDir
	promptGotoDir
)

// dirChangedMsg signals that the watched directory changed externally.
type dirChangedMsg struct{}

// Model is the bubbletea model driving the directory editor. It owns a stack
// of directory views; navigating into a directory pushes a new view unless
// reuse_view is set, and closing a view pops back to the previous one.
type Model struct {
	cfg    *config.Config
	keys   KeyMap
	styles Styles

	views     []*browse.View
	rendering browse.Rendering
	cursor    int

	visual      bool
	visualStart int

	mode     mode
	showHelp bool

	// createPending is set while the previous key matched the create prefix,
	// so the next key can complete the cf/cd chord.
	createPending bool

	// Rename mode: one decorated line per entry, the line under the cursor
	// held in a textinput.
	renameLines  []string
	renameCursor int
	renameInput  textinput.Model

	prompt     textinput.Model
	promptKind promptKind

	confirmMsg    string
	pendingDelete []string

	status string
	errMsg string

	watcher *watch.Watcher

	width  int
	height int
}

// New creates a model browsing path. The watcher is optional; pass nil to
// disable auto-refresh.
func New(cfg *config.Config, path string, watcher *watch.Watcher) (*Model, error) {
	view, err := browse.NewView(path, cfg.Settings.ShowHidden)
	if err != nil {
		return nil, err
	}

	m := &Model{
		cfg:     cfg,
		keys:    DefaultKeyMap(),
		styles:  NewStyles(cfg),
		views:   []*browse.View{view},
		watcher: watcher,
		status:  "[?: help]",
	}
	m.rendering = view.Render("")
	m.cursor = m.rendering.CursorLine

	if watcher != nil {
		if err := watcher.Watch(view.Path()); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.listenChanges()
}

// View returns the current view (top of the stack).
func (m *Model) view() *browse.View {
	return m.views[len(m.views)-1]
}

// CurrentDir returns the displayed directory path.
func (m *Model) CurrentDir() string {
	return m.view().Path()
}

// Cursor returns the cursor's buffer line.
func (m *Model) Cursor() int {
	return m.cursor
}

// Renaming reports whether rename mode is active.
func (m *Model) Renaming() bool {
	return m.mode == modeRename
}

// Marked returns the marked names of the current view.
func (m *Model) Marked() []string {
	return m.view().Marks().Names()
}

// listenChanges waits for the next external change to the watched directory.
func (m *Model) listenChanges() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Changes()
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return dirChangedMsg{}
	}
}

// selectionLines returns the buffer lines a command targets: the visual
// range when active, else the cursor line.
func (m *Model) selectionLines() []int {
	if !m.visual {
		return []int{m.cursor}
	}
	lo, hi := m.visualStart, m.cursor
	if lo > hi {
		lo, hi = hi, lo
	}
	lines := make([]int, 0, hi-lo+1)
	for l := lo; l <= hi; l++ {
		lines = append(lines, l)
	}
	return lines
}

// targets resolves the names the next operation acts on, marked set first.
func (m *Model) targets() []string {
	return m.view().Targets(m.selectionLines())
}

// refresh re-lists the current directory and re-renders, placing the cursor
// on gotoName when it is still present.
func (m *Model) refresh(gotoName string) {
	if err := m.view().Refresh(); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.rendering = m.view().Render(gotoName)
	m.cursor = m.rendering.CursorLine
	m.visual = false
}

// cursorName returns the entry name under the cursor, if any.
func (m *Model) cursorName() (string, bool) {
	name, ok := m.rendering.LineToName[m.cursor]
	return name, ok
}

// navigate opens dir, pushing a new view unless reuse_view is set, and
// re-points the watcher.
func (m *Model) navigate(dir, gotoName string) {
	m.openDir(dir, gotoName, m.cfg.Settings.ReuseView)
}

func (m *Model) openDir(dir, gotoName string, replace bool) {
	view, err := browse.NewView(dir, m.cfg.Settings.ShowHidden)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if replace {
		m.views[len(m.views)-1] = view
	} else {
		m.views = append(m.views, view)
	}
	m.rendering = view.Render(gotoName)
	m.cursor = m.rendering.CursorLine
	m.visual = false
	m.errMsg = ""
	m.watchCurrent()
}

// closeView pops the view stack; closing the last view quits.
func (m *Model) closeView() tea.Cmd {
	if len(m.views) == 1 {
		return tea.Quit
	}
	m.views = m.views[:len(m.views)-1]
	m.refresh("")
	m.watchCurrent()
	return nil
}

func (m *Model) watchCurrent() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Watch(m.view().Path()); err != nil {
		m.errMsg = err.Error()
	}
}

// goUp navigates to the parent, cursor on the directory we came from.
// Going up always replaces the current view; pushing would grow the stack
// on every up/down round trip.
func (m *Model) goUp() {
	v := m.view()
	parent := v.Parent()
	if parent == v.Path() {
		return
	}
	m.openDir(parent, filepath.Base(v.Path()), true)
}

// clampCursor keeps the cursor within the parent line and the last entry.
func (m *Model) clampCursor() {
	last := browse.HeaderLines + m.rendering.EntryCount() - 1
	if last < browse.ParentLine {
		last = browse.ParentLine
	}
	if m.cursor > last {
		m.cursor = last
	}
	if m.cursor < browse.ParentLine {
		m.cursor = browse.ParentLine
	}
}
