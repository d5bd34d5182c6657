package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Cyberpunk color palette
	neonCyan    = lipgloss.Color("#00FFFF")
	neonMagenta = lipgloss.Color("#FF00FF")
	neonGreen   = lipgloss.Color("#39FF14")
	neonYellow  = lipgloss.Color("#FFFF00")
	neonOrange  = lipgloss.Color("#FF6700")
	darkBg      = lipgloss.Color("#0A0E27")
	dimWhite    = lipgloss.Color("#B0B0B0")
	brightWhite = lipgloss.Color("#FFFFFF")

	logoStyle = lipgloss.NewStyle().
			Foreground(neonCyan).
			Bold(true).
			Padding(1, 0, 0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(neonMagenta).
			Padding(0, 1)

	statsLabelStyle = lipgloss.NewStyle().
			Foreground(neonCyan).
			Bold(true)

	statsValueStyle = lipgloss.NewStyle().
			Foreground(neonYellow)

	successStyle = lipgloss.NewStyle().
			Foreground(neonGreen).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(dimWhite).
			Italic(true).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 1)
)

// tableStyles applies the palette to the results table.
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(neonMagenta).
		BorderBottom(true).
		Foreground(neonCyan).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(darkBg).
		Background(neonCyan).
		Bold(true)
	s.Cell = s.Cell.Foreground(brightWhite)
	return s
}

// engagementStyle colors a rate by how strong it is for a small account.
func engagementStyle(rate float64) lipgloss.Style {
	switch {
	case rate >= 10:
		return lipgloss.NewStyle().Foreground(neonGreen)
	case rate >= 5:
		return lipgloss.NewStyle().Foreground(neonYellow)
	default:
		return lipgloss.NewStyle().Foreground(neonOrange)
	}
}
