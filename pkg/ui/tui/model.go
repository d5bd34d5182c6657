package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"influencerfinder/pkg/export"
	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/results"
)

// defaultTableHeight is used until the terminal size is known.
const defaultTableHeight = 15

// chromeHeight is the number of lines around the table: logo, stats,
// borders, status and help.
const chromeHeight = 12

// ExportFunc writes profiles somewhere and returns where.
type ExportFunc func(profiles []influencer.EnrichedProfile) (string, error)

// Model is the results browser.
type Model struct {
	results results.View
	table   table.Model
	keys    KeyMap
	help    help.Model
	export  ExportFunc

	// UI state
	width   int
	height  int
	status  string
	failed  bool
	exiting bool
}

// NewModel creates a browser over v. exportFn may be nil, which disables
// exporting.
func NewModel(v results.View, exportFn ExportFunc) Model {
	t := table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)
	t.SetStyles(tableStyles())

	m := Model{
		results: v,
		table:   t,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		export:  exportFn,
	}
	m.refresh()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Results returns the current view including selection and ordering.
func (m Model) Results() results.View {
	return m.results
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status
}

func columns() []table.Column {
	return []table.Column{
		{Title: "", Width: 3},
		{Title: "Username", Width: 24},
		{Title: "Followers", Width: 10},
		{Title: "ER %", Width: 8},
		{Title: "Avg Likes", Width: 9},
		{Title: "Avg Comm.", Width: 9},
		{Title: "Country", Width: 16},
		{Title: "Category", Width: 12},
	}
}

// refresh rebuilds the table rows from the view.
func (m *Model) refresh() {
	profiles := m.results.Profiles()
	rows := make([]table.Row, len(profiles))
	for i, p := range profiles {
		mark := "[ ]"
		if m.results.IsSelected(p.Username) {
			mark = "[x]"
		}
		rows[i] = table.Row{
			mark,
			"@" + p.Username,
			export.FormatNumber(p.Followers),
			export.FormatPercentage(p.EngagementRate),
			export.FormatNumber(p.AvgLikes),
			export.FormatNumber(p.AvgComments),
			p.Country,
			p.Category,
		}
	}
	m.table.SetRows(rows)
	if n := len(rows); n > 0 && m.table.Cursor() >= n {
		m.table.SetCursor(n - 1)
	}
}

// current returns the profile under the cursor.
func (m Model) current() (influencer.EnrichedProfile, bool) {
	return m.results.At(m.table.Cursor())
}

// resort reorders the view and keeps the cursor on the same profile.
func (m *Model) resort(field influencer.SortField, order influencer.Order) {
	p, ok := m.current()
	m.results = m.results.Resort(field, order)
	m.refresh()
	if !ok {
		return
	}
	for i, q := range m.results.Profiles() {
		if q.Username == p.Username {
			m.table.SetCursor(i)
			break
		}
	}
}

func (m *Model) setStatus(msg string, failed bool) {
	m.status = msg
	m.failed = failed
}

// nextSortField cycles through influencer.SortFields.
func nextSortField(current influencer.SortField) influencer.SortField {
	for i, f := range influencer.SortFields {
		if f == current {
			return influencer.SortFields[(i+1)%len(influencer.SortFields)]
		}
	}
	return influencer.SortFields[0]
}

func flipOrder(o influencer.Order) influencer.Order {
	if o == influencer.OrderAsc {
		return influencer.OrderDesc
	}
	return influencer.OrderAsc
}

func tableHeight(windowHeight int) int {
	if h := windowHeight - chromeHeight; h > 3 {
		return h
	}
	return 3
}
