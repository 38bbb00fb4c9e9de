package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the browser modes.
type KeyMap struct {
	// General
	Help key.Binding
	Quit key.Binding

	// Navigation
	Up         key.Binding
	Down       key.Binding
	GotoTop    key.Binding
	GotoBottom key.Binding
	Open       key.Binding // Enter a directory / activate the parent line
	GoUp       key.Binding // Go to parent directory
	GotoDir    key.Binding // Prompt for a directory
	Refresh    key.Binding

	// Marking
	ToggleMark   key.Binding
	ToggleAll    key.Binding
	UnmarkAll    key.Binding
	MarkPattern  key.Binding
	VisualSelect key.Binding

	// File operations
	Rename       key.Binding
	Move         key.Binding
	Delete       key.Binding
	CreatePrefix key.Binding // 'c' then 'f'/'d'

	// Rename mode
	ApplyRename  key.Binding
	CancelRename key.Binding
}

// DefaultKeyMap returns the dired-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "close view"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first entry"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G/end", "last entry"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o", "l"),
			key.WithHelp("enter/o", "open directory"),
		),
		GoUp: key.NewBinding(
			key.WithKeys("backspace", "h"),
			key.WithHelp("backspace", "parent directory"),
		),
		GotoDir: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to directory"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		ToggleMark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle mark"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle all marks"),
		),
		UnmarkAll: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unmark all"),
		),
		MarkPattern: key.NewBinding(
			key.WithKeys("*"),
			key.WithHelp("*", "mark by pattern"),
		),
		VisualSelect: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "visual select"),
		),
		Rename: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rename"),
		),
		Move: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "move"),
		),
		Delete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete"),
		),
		CreatePrefix: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("cf/cd", "create file/directory"),
		),
		ApplyRename: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "apply changes"),
		),
		CancelRename: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "discard changes"),
		),
	}
}
