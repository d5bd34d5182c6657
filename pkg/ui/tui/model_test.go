package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/results"
)

func testView() results.View {
	profile := func(name string, followers int64, rate float64) influencer.EnrichedProfile {
		return influencer.EnrichedProfile{
			Profile: influencer.Profile{Username: name, Followers: followers, Country: "Canada", Category: "travel"},
			Metrics: influencer.Metrics{EngagementRate: rate},
		}
	}
	return results.NewView([]influencer.EnrichedProfile{
		profile("low_rate", 9000, 2.5),
		profile("high_rate", 1000, 12.25),
		profile("mid_rate", 5000, 6),
	}, "", "")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestNewModel(t *testing.T) {
	m := NewModel(testView(), nil)

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][1] != "@high_rate" || rows[0][3] != "12.25%" {
		t.Errorf("Unexpected first row %v", rows[0])
	}
	if p, ok := m.current(); !ok || p.Username != "high_rate" {
		t.Errorf("Expected cursor on high_rate, got %v", p.Username)
	}
}

func TestToggleSelection(t *testing.T) {
	m := NewModel(testView(), nil)

	press(&m, runes("x"))
	if got := m.Results().SelectedUsernames(); len(got) != 1 || got[0] != "high_rate" {
		t.Fatalf("Expected high_rate selected, got %v", got)
	}
	if m.table.Rows()[0][0] != "[x]" {
		t.Errorf("Expected row to be marked, got %q", m.table.Rows()[0][0])
	}

	press(&m, tea.KeyMsg{Type: tea.KeyDown}, runes("x"))
	if got := m.Results().SelectedCount(); got != 2 {
		t.Errorf("Expected 2 selected, got %d", got)
	}

	press(&m, runes("x"))
	if m.Results().IsSelected("mid_rate") {
		t.Error("Expected second toggle to deselect")
	}
}

func TestSelectAllAndClear(t *testing.T) {
	m := NewModel(testView(), nil)

	press(&m, runes("a"))
	if got := m.Results().SelectedCount(); got != 3 {
		t.Errorf("Expected all selected, got %d", got)
	}

	press(&m, runes("c"))
	if got := m.Results().SelectedCount(); got != 0 {
		t.Errorf("Expected selection cleared, got %d", got)
	}
}

func TestResortKeepsCursorOnProfile(t *testing.T) {
	m := NewModel(testView(), nil)
	press(&m, runes("x"))

	press(&m, runes("s"))
	if m.Results().SortBy() != influencer.SortByFollowers {
		t.Fatalf("Expected followers sort, got %s", m.Results().SortBy())
	}
	if p, _ := m.current(); p.Username != "high_rate" {
		t.Errorf("Expected cursor to follow high_rate, got %s", p.Username)
	}
	if m.table.Cursor() != 2 {
		t.Errorf("Expected high_rate last by followers desc, cursor at %d", m.table.Cursor())
	}
	if !m.Results().IsSelected("high_rate") {
		t.Error("Expected selection to survive resort")
	}

	press(&m, runes("o"))
	if m.Results().Order() != influencer.OrderAsc {
		t.Errorf("Expected ascending order, got %s", m.Results().Order())
	}
	if m.table.Cursor() != 0 {
		t.Errorf("Expected high_rate first ascending, cursor at %d", m.table.Cursor())
	}
}

func TestExport(t *testing.T) {
	var exported []string
	m := NewModel(testView(), func(profiles []influencer.EnrichedProfile) (string, error) {
		for _, p := range profiles {
			exported = append(exported, p.Username)
		}
		return "out.csv", nil
	})

	press(&m, runes("x"))
	cmd := press(&m, runes("e"))
	if cmd == nil {
		t.Fatal("Expected an export command")
	}

	press(&m, cmd())
	if len(exported) != 1 || exported[0] != "high_rate" {
		t.Errorf("Expected only the selection exported, got %v", exported)
	}
	if m.Status() != "Exported 1 profiles to out.csv" {
		t.Errorf("Unexpected status %q", m.Status())
	}
}

func TestExportWithoutSelectionExportsAll(t *testing.T) {
	count := 0
	m := NewModel(testView(), func(profiles []influencer.EnrichedProfile) (string, error) {
		count = len(profiles)
		return "", errors.New("disk full")
	})

	cmd := press(&m, runes("e"))
	press(&m, cmd())
	if count != 3 {
		t.Errorf("Expected all 3 profiles exported, got %d", count)
	}
	if !m.failed || !strings.Contains(m.Status(), "disk full") {
		t.Errorf("Expected failure status, got %q", m.Status())
	}
}

func TestExportDisabled(t *testing.T) {
	m := NewModel(testView(), nil)

	if cmd := press(&m, runes("e")); cmd != nil {
		t.Error("Expected no command without an exporter")
	}
	if !m.failed {
		t.Error("Expected an error status")
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(testView(), nil)

	cmd := press(&m, runes("q"))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quitting")
	}
}

func TestViewAndResize(t *testing.T) {
	m := NewModel(testView(), nil)
	press(&m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 || m.height != 40 {
		t.Errorf("Expected size 120x40, got %dx%d", m.width, m.height)
	}
	if got := tableHeight(m.height); got != 28 {
		t.Errorf("Expected table height 28, got %d", got)
	}
	if got := tableHeight(5); got != 3 {
		t.Errorf("Expected minimum table height, got %d", got)
	}

	view := m.View()
	for _, want := range []string{"INFLUENCER FINDER", "Results:", "@high_rate", "engagement_rate"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}

	empty := NewModel(results.NewView(nil, "", ""), nil)
	if !strings.Contains(empty.View(), "No influencers match") {
		t.Error("Expected empty state message")
	}
}

func TestNextSortField(t *testing.T) {
	if got := nextSortField(influencer.SortByEngagementRate); got != influencer.SortByFollowers {
		t.Errorf("nextSortField(engagement_rate) = %s", got)
	}
	last := influencer.SortFields[len(influencer.SortFields)-1]
	if got := nextSortField(last); got != influencer.SortFields[0] {
		t.Errorf("Expected wrap-around, got %s", got)
	}
	if got := nextSortField("bogus"); got != influencer.SortFields[0] {
		t.Errorf("Expected unknown field to reset, got %s", got)
	}
}
