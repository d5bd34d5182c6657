package influencer

import "strings"

// Post is the interaction count of a single recent post.
type Post struct {
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

// Profile is a social media account as delivered by a profile source.
type Profile struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	ProfilePicURL string `json:"profile_pic_url,omitempty"`
	Biography     string `json:"biography"`
	Followers     int64  `json:"followers"`
	Following     int64  `json:"following"`
	PostsCount    int64  `json:"posts_count"`
	IsVerified    bool   `json:"is_verified"`
	Country       string `json:"country"`
	Category      string `json:"category"`
	Gender        string `json:"gender"`
	RecentPosts   []Post `json:"recent_posts"`
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	if p.RecentPosts != nil {
		posts := make([]Post, len(p.RecentPosts))
		copy(posts, p.RecentPosts)
		p.RecentPosts = posts
	}
	return p
}

// Metrics are the engagement figures derived from a profile's recent posts.
type Metrics struct {
	EngagementRate float64 `json:"engagement_rate"`
	AvgLikes       int64   `json:"avg_likes"`
	AvgComments    int64   `json:"avg_comments"`
	PostsAnalyzed  int     `json:"posts_analyzed"`
}

// EnrichedProfile is a profile together with its metrics. It serializes as
// a single flat JSON object.
type EnrichedProfile struct {
	Profile
	Metrics
}

// Clone returns a deep copy of p.
func (p EnrichedProfile) Clone() EnrichedProfile {
	return EnrichedProfile{Profile: p.Profile.Clone(), Metrics: p.Metrics}
}

// ProfileURL returns the public Instagram URL for username.
func ProfileURL(username string) string {
	return "https://instagram.com/" + strings.TrimPrefix(username, "@")
}

// FindByUsername returns the index of the profile with the given username,
// compared case-insensitively, or -1.
func FindByUsername(profiles []EnrichedProfile, username string) int {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	for i := range profiles {
		if strings.EqualFold(profiles[i].Username, username) {
			return i
		}
	}
	return -1
}
