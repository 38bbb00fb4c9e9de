package tui

import (
	"github.com/charmbracelet/lipgloss"

	"dired/internal/config"
)

// Styles holds the lipgloss styles derived from the configured theme.
type Styles struct {
	Header lipgloss.Style
	Rule   lipgloss.Style
	Parent lipgloss.Style

	Directory lipgloss.Style
	File      lipgloss.Style
	Marked    lipgloss.Style
	Cursor    lipgloss.Style

	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
	Help   lipgloss.Style
}

// NewStyles builds the style set from the theme colors.
func NewStyles(cfg *config.Config) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Theme.Header)),

		Rule: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Header)),

		Parent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Header)),

		Directory: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Theme.Directory)),

		File: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.File)),

		Marked: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Theme.Marked)),

		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(cfg.Theme.Cursor)),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595")),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Theme.Error)),

		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Cursor)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1),
	}
}
