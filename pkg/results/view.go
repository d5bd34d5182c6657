// Package results holds a search result list together with its ordering
// and the user's selection. A View never changes; every operation returns
// a new one.
package results

import (
	"strings"
	"time"

	"influencerfinder/pkg/influencer"
)

// View is an immutable result list with a sort key and a selection set.
// The zero value is an empty view sorted by engagement rate, descending.
type View struct {
	profiles []influencer.EnrichedProfile
	selected map[string]bool
	sortBy   influencer.SortField
	order    influencer.Order
}

// NewView sorts profiles by sortBy and order and returns a view with
// nothing selected.
func NewView(profiles []influencer.EnrichedProfile, sortBy influencer.SortField, order influencer.Order) View {
	if sortBy == "" {
		sortBy = influencer.SortByEngagementRate
	}
	if order == "" {
		order = influencer.OrderDesc
	}
	return View{
		profiles: influencer.Sort(profiles, sortBy, order),
		selected: map[string]bool{},
		sortBy:   sortBy,
		order:    order,
	}
}

func key(username string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(username), "@"))
}

func (v View) withSelection(selected map[string]bool) View {
	v.selected = selected
	return v
}

func (v View) copySelection() map[string]bool {
	out := make(map[string]bool, len(v.selected))
	for k := range v.selected {
		out[k] = true
	}
	return out
}

func (v View) has(username string) bool {
	return influencer.FindByUsername(v.profiles, username) >= 0
}

// Len returns the number of profiles.
func (v View) Len() int { return len(v.profiles) }

// SortBy returns the current sort field.
func (v View) SortBy() influencer.SortField {
	if v.sortBy == "" {
		return influencer.SortByEngagementRate
	}
	return v.sortBy
}

// Order returns the current sort direction.
func (v View) Order() influencer.Order {
	if v.order == "" {
		return influencer.OrderDesc
	}
	return v.order
}

// Profiles returns a copy of the profiles in view order.
func (v View) Profiles() []influencer.EnrichedProfile {
	out := make([]influencer.EnrichedProfile, len(v.profiles))
	for i, p := range v.profiles {
		out[i] = p.Clone()
	}
	return out
}

// At returns the profile at index i.
func (v View) At(i int) (influencer.EnrichedProfile, bool) {
	if i < 0 || i >= len(v.profiles) {
		return influencer.EnrichedProfile{}, false
	}
	return v.profiles[i].Clone(), true
}

// IsSelected reports whether username is selected.
func (v View) IsSelected(username string) bool {
	return v.selected[key(username)]
}

// SelectedCount returns the number of selected profiles.
func (v View) SelectedCount() int {
	return len(v.selected)
}

// Toggle flips the selection of username. Unknown usernames are ignored.
func (v View) Toggle(username string) View {
	if !v.has(username) {
		return v
	}
	sel := v.copySelection()
	k := key(username)
	if sel[k] {
		delete(sel, k)
	} else {
		sel[k] = true
	}
	return v.withSelection(sel)
}

// Select adds usernames to the selection. Unknown usernames are ignored.
func (v View) Select(usernames ...string) View {
	sel := v.copySelection()
	for _, u := range usernames {
		if v.has(u) {
			sel[key(u)] = true
		}
	}
	return v.withSelection(sel)
}

// Deselect removes usernames from the selection.
func (v View) Deselect(usernames ...string) View {
	sel := v.copySelection()
	for _, u := range usernames {
		delete(sel, key(u))
	}
	return v.withSelection(sel)
}

// SelectAll selects every profile.
func (v View) SelectAll() View {
	sel := make(map[string]bool, len(v.profiles))
	for _, p := range v.profiles {
		sel[key(p.Username)] = true
	}
	return v.withSelection(sel)
}

// ClearSelection deselects everything.
func (v View) ClearSelection() View {
	return v.withSelection(map[string]bool{})
}

// Resort reorders the profiles, keeping the selection.
func (v View) Resort(sortBy influencer.SortField, order influencer.Order) View {
	next := NewView(v.profiles, sortBy, order)
	return next.withSelection(v.copySelection())
}

// Selected returns the selected profiles in view order.
func (v View) Selected() []influencer.EnrichedProfile {
	out := make([]influencer.EnrichedProfile, 0, len(v.selected))
	for _, p := range v.profiles {
		if v.selected[key(p.Username)] {
			out = append(out, p.Clone())
		}
	}
	return out
}

// SelectedUsernames returns the selected usernames in view order.
func (v View) SelectedUsernames() []string {
	selected := v.Selected()
	names := make([]string, len(selected))
	for i, p := range selected {
		names[i] = p.Username
	}
	return names
}

// ExportSet returns the selected profiles, or all of them when all is set
// or nothing is selected.
func (v View) ExportSet(all bool) []influencer.EnrichedProfile {
	if all || len(v.selected) == 0 {
		return v.Profiles()
	}
	return v.Selected()
}

// Snapshot is the serializable form of a View.
type Snapshot struct {
	Mode     string                       `json:"mode"`
	Criteria influencer.Criteria          `json:"criteria"`
	SortBy   influencer.SortField         `json:"sort_by"`
	Order    influencer.Order             `json:"order"`
	Profiles []influencer.EnrichedProfile `json:"profiles"`
	Selected []string                     `json:"selected"`
	SavedAt  time.Time                    `json:"saved_at"`
}

// Snapshot captures v. Mode and Criteria describe the search that
// produced it.
func (v View) Snapshot(mode string, criteria influencer.Criteria) Snapshot {
	return Snapshot{
		Mode:     mode,
		Criteria: criteria,
		SortBy:   v.SortBy(),
		Order:    v.Order(),
		Profiles: v.Profiles(),
		Selected: v.SelectedUsernames(),
		SavedAt:  time.Now(),
	}
}

// View rebuilds the view a snapshot was taken from.
func (s Snapshot) View() View {
	return NewView(s.Profiles, s.SortBy, s.Order).Select(s.Selected...)
}
