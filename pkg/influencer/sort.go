package influencer

import (
	"sort"
	"strings"
)

// SortField names a numeric field results can be ordered by.
type SortField string

const (
	SortByEngagementRate SortField = "engagement_rate"
	SortByFollowers      SortField = "followers"
	SortByFollowing      SortField = "following"
	SortByPostsCount     SortField = "posts_count"
	SortByAvgLikes       SortField = "avg_likes"
	SortByAvgComments    SortField = "avg_comments"
	SortByPostsAnalyzed  SortField = "posts_analyzed"
)

// Order is the sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// SortFields lists the known sort fields in display order.
var SortFields = []SortField{
	SortByEngagementRate,
	SortByFollowers,
	SortByAvgLikes,
	SortByAvgComments,
	SortByFollowing,
	SortByPostsCount,
	SortByPostsAnalyzed,
}

// ParseSortField normalizes user input. Empty input selects engagement rate.
// Unrecognized names are passed through and sort every key as 0.
func ParseSortField(s string) SortField {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortByEngagementRate
	}
	return SortField(s)
}

// ParseOrder returns OrderAsc for "asc" in any case and OrderDesc otherwise.
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), string(OrderAsc)) {
		return OrderAsc
	}
	return OrderDesc
}

// Value returns the numeric value of field for p, or 0 if the field is
// unknown.
func (p EnrichedProfile) Value(field SortField) float64 {
	switch field {
	case SortByEngagementRate:
		return p.EngagementRate
	case SortByFollowers:
		return float64(p.Followers)
	case SortByFollowing:
		return float64(p.Following)
	case SortByPostsCount:
		return float64(p.PostsCount)
	case SortByAvgLikes:
		return float64(p.AvgLikes)
	case SortByAvgComments:
		return float64(p.AvgComments)
	case SortByPostsAnalyzed:
		return float64(p.PostsAnalyzed)
	default:
		return 0
	}
}

// Sort returns a stably sorted copy of profiles. Empty sortBy and order
// default to engagement rate, descending.
func Sort(profiles []EnrichedProfile, sortBy SortField, order Order) []EnrichedProfile {
	if sortBy == "" {
		sortBy = SortByEngagementRate
	}
	out := make([]EnrichedProfile, len(profiles))
	for i, p := range profiles {
		out[i] = p.Clone()
	}

	asc := order == OrderAsc
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Value(sortBy), out[j].Value(sortBy)
		if asc {
			return a < b
		}
		return a > b
	})
	return out
}
