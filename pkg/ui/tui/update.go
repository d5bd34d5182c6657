package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ExportDoneMsg reports the outcome of an export started from the browser.
type ExportDoneMsg struct {
	Path  string
	Count int
	Err   error
}

// Update handles all messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(tableHeight(msg.Height))
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.setStatus("Export failed: "+msg.Err.Error(), true)
		} else {
			m.setStatus(fmt.Sprintf("Exported %d profiles to %s", msg.Count, msg.Path), false)
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.exiting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Toggle):
		if p, ok := m.current(); ok {
			m.results = m.results.Toggle(p.Username)
			m.refresh()
		}

	case key.Matches(msg, m.keys.SelectAll):
		m.results = m.results.SelectAll()
		m.refresh()

	case key.Matches(msg, m.keys.Clear):
		m.results = m.results.ClearSelection()
		m.refresh()

	case key.Matches(msg, m.keys.Sort):
		m.resort(nextSortField(m.results.SortBy()), m.results.Order())
		m.setStatus(fmt.Sprintf("Sorted by %s", m.results.SortBy()), false)

	case key.Matches(msg, m.keys.Order):
		m.resort(m.results.SortBy(), flipOrder(m.results.Order()))
		m.setStatus(fmt.Sprintf("Order %s", m.results.Order()), false)

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// exportCmd exports the selection, or every result when nothing is
// selected.
func (m *Model) exportCmd() tea.Cmd {
	if m.export == nil {
		m.setStatus("Export is not available here", true)
		return nil
	}
	profiles := m.results.ExportSet(false)
	if len(profiles) == 0 {
		m.setStatus("Nothing to export", true)
		return nil
	}

	m.setStatus(fmt.Sprintf("Exporting %d profiles...", len(profiles)), false)
	fn := m.export
	return func() tea.Msg {
		path, err := fn(profiles)
		return ExportDoneMsg{Path: path, Count: len(profiles), Err: err}
	}
}
