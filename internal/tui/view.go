package tui

import (
	"fmt"
	"strings"

	"dired/internal/browse"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	lines := m.styledLines()
	start, end := m.viewport(len(lines))
	for _, line := range lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(m.helpView())
		b.WriteString("\n")
	}

	b.WriteString(m.footer())
	return b.String()
}

// styledLines renders the buffer with theme styles, substituting the
// editable lines while rename mode is active.
func (m *Model) styledLines() []string {
	r := m.rendering
	marked := make(map[int]bool, len(r.MarkedLines))
	for _, l := range r.MarkedLines {
		marked[l] = true
	}

	out := make([]string, 0, len(r.Lines))
	for i, line := range r.Lines {
		switch {
		case i == 0:
			out = append(out, m.styles.Header.Render(line))
		case i == 1:
			out = append(out, m.styles.Rule.Render(line))
		case i == browse.ParentLine:
			out = append(out, m.cursorize(i, m.styles.Parent.Render(line)))
		default:
			out = append(out, m.entryLine(i, line, marked[i]))
		}
	}
	return out
}

func (m *Model) entryLine(line int, text string, isMarked bool) string {
	if m.mode == modeRename {
		idx := line - browse.HeaderLines
		if idx == m.renameCursor {
			return m.styles.Cursor.Render(m.renameInput.View())
		}
		return m.styles.File.Render(m.renameLines[idx])
	}

	// The mark only changes the style; the decoration stays intact so a
	// marked line still round-trips through ParseLine.
	style := m.styles.File
	if e, ok := browse.ParseLine(text); ok && e.IsDir() {
		style = m.styles.Directory
	}
	if isMarked {
		style = m.styles.Marked
	}
	return m.cursorize(line, style.Render(text))
}

// cursorize highlights the line under the cursor (browse modes only).
func (m *Model) cursorize(line int, text string) string {
	if m.mode != modeRename && line == m.cursor {
		return m.styles.Cursor.Render("▍") + text
	}
	return "  " + text
}

// viewport windows the lines to the terminal height, keeping the cursor
// visible.
func (m *Model) viewport(total int) (int, int) {
	avail := m.height - 3 // footer + prompt/help space
	if m.height == 0 || avail >= total || avail < 1 {
		return 0, total
	}
	start := m.cursor - avail/2
	if start < 0 {
		start = 0
	}
	if start+avail > total {
		start = total - avail
	}
	return start, start + avail
}

func (m *Model) footer() string {
	switch m.mode {
	case modePrompt:
		return m.styles.Prompt.Render(m.prompt.View())
	case modeConfirm:
		return m.styles.Error.Render(m.confirmMsg)
	}

	parts := []string{}
	if m.errMsg != "" {
		parts = append(parts, m.styles.Error.Render(m.errMsg))
	}
	if n := m.view().Marks().Len(); n > 0 {
		parts = append(parts, m.styles.Marked.Render(fmt.Sprintf("%d marked", n)))
	}
	if m.visual {
		parts = append(parts, m.styles.Status.Render("-- visual --"))
	}
	parts = append(parts, m.styles.Status.Render(m.status))
	return strings.Join(parts, "  ")
}

func (m *Model) helpView() string {
	rows := []string{
		"m  toggle mark          R  rename",
		"t  toggle all marks     M  move",
		"u  unmark all           D  delete",
		"*  mark by pattern      cf create file",
		"v  visual select        cd create directory",
		"g  go to directory      r  refresh",
		"enter/o open            backspace parent",
		"q  close view           ?  toggle help",
	}
	return m.styles.Help.Render(strings.Join(rows, "\n"))
}
