package influencer

import "math"

// ComputeEngagement derives metrics from the recent posts of p.
func ComputeEngagement(p Profile) Metrics {
	n := len(p.RecentPosts)
	if n == 0 {
		return Metrics{}
	}

	var likes, comments int64
	for _, post := range p.RecentPosts {
		likes += post.Likes
		comments += post.Comments
	}

	avgLikes := float64(likes) / float64(n)
	avgComments := float64(comments) / float64(n)

	var rate float64
	if p.Followers > 0 {
		rate = roundTo((avgLikes+avgComments)/float64(p.Followers)*100, 2)
	}

	return Metrics{
		EngagementRate: rate,
		AvgLikes:       roundHalfUp(avgLikes),
		AvgComments:    roundHalfUp(avgComments),
		PostsAnalyzed:  n,
	}
}

// Enrich returns a new record holding a copy of p and its metrics.
func Enrich(p Profile) EnrichedProfile {
	return EnrichedProfile{Profile: p.Clone(), Metrics: ComputeEngagement(p)}
}

// EnrichAll enriches every profile, keeping order.
func EnrichAll(profiles []Profile) []EnrichedProfile {
	out := make([]EnrichedProfile, len(profiles))
	for i, p := range profiles {
		out[i] = Enrich(p)
	}
	return out
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func roundHalfUp(v float64) int64 {
	return int64(math.Round(v))
}
