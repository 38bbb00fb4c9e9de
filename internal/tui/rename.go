package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dired/internal/browse"
	"dired/internal/errors"
)

// startRename captures the baseline and switches the entry region to
// editable lines, the one under the cursor held in a focused textinput.
func (m *Model) startRename() {
	session := m.view().BeginRename()
	if session == nil {
		m.status = "nothing to rename"
		return
	}

	entries := m.view().Entries()
	m.renameLines = make([]string, len(entries))
	for i, e := range entries {
		m.renameLines[i] = browse.FormatLine(e)
	}

	m.renameCursor = m.cursor - browse.HeaderLines
	if m.renameCursor < 0 {
		m.renameCursor = 0
	}
	if m.renameCursor >= len(m.renameLines) {
		m.renameCursor = len(m.renameLines) - 1
	}

	m.loadRenameInput()
	m.mode = modeRename
	m.visual = false
	m.status = "[ctrl+s: apply changes] [esc: discard changes]"
}

func (m *Model) loadRenameInput() {
	m.renameInput = textinput.New()
	m.renameInput.Prompt = ""
	m.renameInput.SetValue(m.renameLines[m.renameCursor])
	m.renameInput.CursorEnd()
	m.renameInput.Focus()
}

// syncRenameLine writes the input back into the edited line set.
func (m *Model) syncRenameLine() {
	m.renameLines[m.renameCursor] = m.renameInput.Value()
}

func (m *Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CancelRename):
		m.view().CancelRename()
		gotoName := browse.StripDecoration(m.renameLines[m.renameCursor])
		m.exitRename()
		m.refresh(gotoName)
		return m, nil

	case key.Matches(msg, m.keys.ApplyRename):
		m.syncRenameLine()
		err := m.view().CommitRename(m.renameLines)
		if errors.IsLineCountMismatch(err) || errors.IsDuplicateName(err) {
			// Zero filesystem effect; stay in rename mode for correction.
			m.errMsg = err.Error()
			return m, nil
		}
		gotoName := browse.StripDecoration(m.renameLines[m.renameCursor])
		m.exitRename()
		if err != nil {
			// Renames already applied stand; show reality.
			m.errMsg = err.Error()
		}
		m.refresh(gotoName)
		return m, nil

	case msg.String() == "up":
		m.syncRenameLine()
		if m.renameCursor > 0 {
			m.renameCursor--
		}
		m.loadRenameInput()
		return m, nil

	case msg.String() == "down":
		m.syncRenameLine()
		if m.renameCursor < len(m.renameLines)-1 {
			m.renameCursor++
		}
		m.loadRenameInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

func (m *Model) exitRename() {
	m.mode = modeBrowse
	m.renameLines = nil
	m.status = "[?: help]"
}
