package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const logo = "◆ INFLUENCER FINDER"

// View renders the entire TUI
func (m Model) View() string {
	if m.exiting {
		return ""
	}

	sections := []string{
		logoStyle.Render(logo),
		m.renderStats(),
	}

	if m.results.Len() == 0 {
		sections = append(sections, emptyStyle.Render("No influencers match these filters."))
	} else {
		sections = append(sections, panelStyle.Render(m.table.View()))
	}

	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStats renders the result count, selection and ordering line
func (m Model) renderStats() string {
	stat := func(label, value string) string {
		return statsLabelStyle.Render(label) + " " + statsValueStyle.Render(value)
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Results:", fmt.Sprint(m.results.Len())),
		"   ",
		stat("Selected:", fmt.Sprint(m.results.SelectedCount())),
		"   ",
		stat("Sort:", fmt.Sprintf("%s %s", m.results.SortBy(), m.results.Order())),
	)

	if p, ok := m.current(); ok {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, "   ",
			stat("ER:", engagementStyle(p.EngagementRate).Render(fmt.Sprintf("%.2f%%", p.EngagementRate))))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(line)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.failed {
		return errorStyle.Padding(0, 1).Render(m.status)
	}
	return successStyle.Padding(0, 1).Render(m.status)
}
