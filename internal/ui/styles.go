package ui

import "github.com/charmbracelet/lipgloss"

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	helpStyle   = lipgloss.NewStyle().Faint(true)

	columnTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	columnStyle      = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8"))
	columnHoverStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("12"))

	cursorStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	draggingStyle = lipgloss.NewStyle().Faint(true)
	hoverStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	grabbedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

// SetTheme switches the palette. "mono" drops every color and weight
// so the board stays legible on plain terminals.
func SetTheme(name string) {
	switch name {
	case "mono":
		plain := lipgloss.NewStyle()
		titleStyle = plain
		mutedStyle = plain
		accentStyle = plain
		helpStyle = plain
		columnTitleStyle = plain
		columnStyle = plain.Border(lipgloss.NormalBorder())
		columnHoverStyle = plain.Border(lipgloss.ThickBorder())
		cursorStyle = plain.Reverse(true)
		draggingStyle = plain.Faint(true)
		hoverStyle = plain
		grabbedStyle = plain.Reverse(true)
	default: // classic
	}
}

// Title renders the application header line.
func Title(s string) string { return titleStyle.Render(s) }

// Muted renders a de-emphasized line.
func Muted(s string) string { return mutedStyle.Render(s) }

// Help renders the footer help line.
func Help(s string) string { return helpStyle.Render(s) }
