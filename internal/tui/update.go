package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dired/internal/browse"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dirChangedMsg:
		// Never refresh under an active rename; the baseline would go stale.
		if m.mode == modeBrowse {
			name, _ := m.cursorName()
			m.refresh(name)
		}
		return m, m.listenChanges()

	case tea.KeyMsg:
		switch m.mode {
		case modeRename:
			return m.updateRename(msg)
		case modePrompt:
			return m.updatePrompt(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	defer func() { m.createPending = key.Matches(msg, m.keys.CreatePrefix) }()

	// Two-key create chords: cf = new file, cd = new directory.
	if m.createPending {
		switch msg.String() {
		case "f":
			m.startPrompt(promptNewFile, "File: ", "")
			return m, textinput.Blink
		case "d":
			m.startPrompt(promptNewDir, "Directory: ", "")
			return m, textinput.Blink
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.closeView()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()

	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()

	case key.Matches(msg, m.keys.GotoTop):
		m.cursor = browse.HeaderLines
		m.clampCursor()

	case key.Matches(msg, m.keys.GotoBottom):
		m.cursor = browse.HeaderLines + m.rendering.EntryCount() - 1
		m.clampCursor()

	case key.Matches(msg, m.keys.VisualSelect):
		m.visual = !m.visual
		if m.visual {
			m.visualStart = m.cursor
		}

	case key.Matches(msg, m.keys.Open):
		m.openUnderCursor()

	case key.Matches(msg, m.keys.GoUp):
		m.goUp()

	case key.Matches(msg, m.keys.GotoDir):
		m.startPrompt(promptGotoDir, "Goto: ", m.view().Path())
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Refresh):
		name, _ := m.cursorName()
		m.refresh(name)

	case key.Matches(msg, m.keys.ToggleMark):
		m.toggleMarks()

	case key.Matches(msg, m.keys.ToggleAll):
		m.view().Marks().Apply(browse.Toggle, m.view().Names())
		m.rerender()

	case key.Matches(msg, m.keys.UnmarkAll):
		m.view().Marks().Clear()
		m.rerender()

	case key.Matches(msg, m.keys.MarkPattern):
		m.startPrompt(promptPattern, "Pattern: ", "")
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Rename):
		m.startRename()
		if m.mode == modeRename {
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Move):
		if len(m.targets()) > 0 {
			m.startPrompt(promptMoveDest, "Move to: ", m.view().Path())
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Delete):
		m.startDelete()
	}

	return m, nil
}

// openUnderCursor enters the directory under the cursor, or goes up when the
// cursor sits on the parent marker line. Plain files are outside this tool's
// scope; the host editor opens them.
func (m *Model) openUnderCursor() {
	if m.cursor == browse.ParentLine {
		m.goUp()
		return
	}
	name, ok := m.cursorName()
	if !ok {
		return
	}
	entry, ok := m.view().Entry(name)
	if !ok {
		return
	}
	if entry.IsDir() {
		m.navigate(filepath.Join(m.view().Path(), name), "")
		return
	}
	m.status = fmt.Sprintf("%s is a file; dired only browses directories", name)
}

// toggleMarks toggles the targeted lines. A single-line toggle without an
// active visual selection advances the cursor so the key can be repeated
// down the list.
func (m *Model) toggleMarks() {
	lines := m.selectionLines()
	names := m.rendering.NamesAt(lines)
	if len(names) == 0 {
		return
	}
	m.view().Marks().Apply(browse.Toggle, names)
	m.rerender()
	if !m.visual && len(lines) == 1 {
		m.cursor++
		m.clampCursor()
	}
}

// rerender redraws from current state without re-listing the directory.
func (m *Model) rerender() {
	name, _ := m.cursorName()
	m.rendering = m.view().Render(name)
	m.clampCursor()
}

func (m *Model) startDelete() {
	targets := m.targets()
	if len(targets) == 0 {
		return
	}
	if len(targets) == 1 {
		m.confirmMsg = fmt.Sprintf("Delete %s? (y/n)", targets[0])
	} else {
		m.confirmMsg = fmt.Sprintf("Delete %d items? (y/n)", len(targets))
	}
	m.pendingDelete = targets
	m.mode = modeConfirm
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		if err := browse.Delete(m.view().Path(), m.pendingDelete); err != nil {
			m.errMsg = err.Error()
		}
		m.refresh("")
	}
	m.mode = modeBrowse
	m.confirmMsg = ""
	m.pendingDelete = nil
	return m, nil
}

func (m *Model) startPrompt(kind promptKind, label, initial string) {
	m.prompt = textinput.New()
	m.prompt.Prompt = label
	m.prompt.SetValue(initial)
	m.prompt.CursorEnd()
	m.prompt.Focus()
	m.promptKind = kind
	m.mode = modePrompt
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.promptKind = promptNone
		return m, nil
	case "enter":
		value := m.prompt.Value()
		kind := m.promptKind
		m.mode = modeBrowse
		m.promptKind = promptNone
		m.dispatchPrompt(kind, value)
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) dispatchPrompt(kind promptKind, value string) {
	if value == "" {
		return
	}
	switch kind {
	case promptMoveDest:
		if err := browse.Move(m.view().Path(), m.targets(), value); err != nil {
			m.errMsg = err.Error()
			return
		}
		m.refresh("")

	case promptPattern:
		pred, err := browse.MatchPattern(value)
		if err != nil {
			m.errMsg = fmt.Sprintf("bad pattern %q: %v", value, err)
			return
		}
		m.view().Marks().Apply(pred, m.view().Names())
		m.rerender()

	case promptNewFile, promptNewDir:
		entryKind := browse.File
		if kind == promptNewDir {
			entryKind = browse.Directory
		}
		if _, err := browse.CreateEntry(m.view().Path(), value, entryKind); err != nil {
			m.errMsg = err.Error()
			return
		}
		m.refresh(value)

	case promptGotoDir:
		m.navigate(value, "")
	}
}
