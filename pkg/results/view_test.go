package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencerfinder/pkg/influencer"
)

func sample() []influencer.EnrichedProfile {
	mk := func(name string, followers int64, rate float64) influencer.EnrichedProfile {
		return influencer.EnrichedProfile{
			Profile: influencer.Profile{Username: name, Followers: followers},
			Metrics: influencer.Metrics{EngagementRate: rate},
		}
	}
	return []influencer.EnrichedProfile{
		mk("alpha", 5000, 2.5),
		mk("bravo", 9000, 7.1),
		mk("charlie", 1000, 4.0),
	}
}

func names(profiles []influencer.EnrichedProfile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.Username
	}
	return out
}

func TestNewViewSortsByDefault(t *testing.T) {
	v := NewView(sample(), "", "")
	assert.Equal(t, []string{"bravo", "charlie", "alpha"}, names(v.Profiles()))
	assert.Equal(t, influencer.SortByEngagementRate, v.SortBy())
	assert.Equal(t, influencer.OrderDesc, v.Order())
	assert.Equal(t, 3, v.Len())
	assert.Zero(t, v.SelectedCount())
}

func TestToggleReturnsNewView(t *testing.T) {
	v := NewView(sample(), "", "")
	toggled := v.Toggle("@Alpha")

	assert.False(t, v.IsSelected("alpha"), "original view must not change")
	assert.True(t, toggled.IsSelected("alpha"))
	assert.False(t, toggled.Toggle("alpha").IsSelected("alpha"))
}

func TestSelectIgnoresUnknownUsernames(t *testing.T) {
	v := NewView(sample(), "", "").Select("charlie", "nobody", "alpha")
	assert.Equal(t, 2, v.SelectedCount())
	assert.Equal(t, v, v.Toggle("nobody"))
}

func TestSelectedFollowsListOrder(t *testing.T) {
	v := NewView(sample(), "", "").Select("alpha", "bravo")
	assert.Equal(t, []string{"bravo", "alpha"}, v.SelectedUsernames())

	v = v.Resort(influencer.SortByFollowers, influencer.OrderAsc)
	assert.Equal(t, []string{"charlie", "alpha", "bravo"}, names(v.Profiles()))
	assert.Equal(t, []string{"alpha", "bravo"}, v.SelectedUsernames())
}

func TestSelectAllDeselectAndClear(t *testing.T) {
	v := NewView(sample(), "", "").SelectAll()
	assert.Equal(t, 3, v.SelectedCount())

	v = v.Deselect("BRAVO")
	assert.Equal(t, []string{"charlie", "alpha"}, v.SelectedUsernames())

	assert.Zero(t, v.ClearSelection().SelectedCount())
}

func TestExportSet(t *testing.T) {
	v := NewView(sample(), "", "")
	assert.Len(t, v.ExportSet(false), 3, "nothing selected exports everything")

	v = v.Select("charlie")
	assert.Equal(t, []string{"charlie"}, names(v.ExportSet(false)))
	assert.Len(t, v.ExportSet(true), 3)
}

func TestProfilesAreCopies(t *testing.T) {
	v := NewView(sample(), "", "")
	got := v.Profiles()
	got[0].Username = "changed"

	first, ok := v.At(0)
	require.True(t, ok)
	assert.Equal(t, "bravo", first.Username)

	_, ok = v.At(3)
	assert.False(t, ok)
}

func TestSnapshotRoundTrip(t *testing.T) {
	v := NewView(sample(), influencer.SortByFollowers, influencer.OrderAsc).Select("bravo")
	snap := v.Snapshot("demo", influencer.Criteria{Industry: "fitness"})

	assert.Equal(t, "demo", snap.Mode)
	assert.Equal(t, "fitness", snap.Criteria.Industry)
	assert.Equal(t, []string{"bravo"}, snap.Selected)

	restored := snap.View()
	assert.Equal(t, names(v.Profiles()), names(restored.Profiles()))
	assert.True(t, restored.IsSelected("bravo"))
	assert.Equal(t, influencer.OrderAsc, restored.Order())
}

func TestZeroView(t *testing.T) {
	var v View
	assert.Zero(t, v.Len())
	assert.Empty(t, v.Selected())
	assert.Equal(t, influencer.SortByEngagementRate, v.SortBy())
	assert.Zero(t, v.Toggle("x").SelectedCount())
}
