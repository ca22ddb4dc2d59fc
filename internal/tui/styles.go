package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Input style
	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	// Token styles
	TokenStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	// Status styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)

// tableStyles returns the table styles in the TUI colors
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorMuted).
		BorderBottom(true).
		Foreground(colorPrimary).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorFg).
		Background(colorPrimary).
		Bold(false)
	return s
}

// Helper functions
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("Error: " + err)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
