package influencer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func repeatPosts(n int, likes, comments int64) []Post {
	posts := make([]Post, n)
	for i := range posts {
		posts[i] = Post{Likes: likes, Comments: comments}
	}
	return posts
}

func TestComputeEngagementScenario(t *testing.T) {
	// 12 posts averaging 568.33 likes and 46.83 comments.
	posts := repeatPosts(12, 568, 47)
	posts[0].Likes += 4
	posts[1].Comments--
	posts[2].Comments--

	m := ComputeEngagement(Profile{Followers: 4500, RecentPosts: posts})

	assert.Equal(t, 13.67, m.EngagementRate)
	assert.Equal(t, int64(568), m.AvgLikes)
	assert.Equal(t, int64(47), m.AvgComments)
	assert.Equal(t, 12, m.PostsAnalyzed)
}

func TestComputeEngagement(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    Metrics
	}{
		{
			name:    "no posts",
			profile: Profile{Followers: 1000},
			want:    Metrics{},
		},
		{
			name:    "nil posts and zero followers",
			profile: Profile{},
			want:    Metrics{},
		},
		{
			name:    "zero followers",
			profile: Profile{Followers: 0, RecentPosts: repeatPosts(3, 100, 10)},
			want:    Metrics{EngagementRate: 0, AvgLikes: 100, AvgComments: 10, PostsAnalyzed: 3},
		},
		{
			name:    "averages round half up",
			profile: Profile{Followers: 1000, RecentPosts: []Post{{Likes: 1, Comments: 0}, {Likes: 2, Comments: 1}}},
			want:    Metrics{EngagementRate: 0.2, AvgLikes: 2, AvgComments: 1, PostsAnalyzed: 2},
		},
		{
			name:    "single post",
			profile: Profile{Followers: 3000, RecentPosts: []Post{{Likes: 300, Comments: 30}}},
			want:    Metrics{EngagementRate: 11, AvgLikes: 300, AvgComments: 30, PostsAnalyzed: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeEngagement(tt.profile))
		})
	}
}

func TestEnrich(t *testing.T) {
	p := Profile{ID: "7", Username: "someone", Followers: 2000, RecentPosts: repeatPosts(4, 150, 10)}

	e := Enrich(p)
	assert.Equal(t, "someone", e.Username)
	assert.Equal(t, 8.0, e.EngagementRate)
	assert.Equal(t, 4, e.PostsAnalyzed)

	again := Enrich(e.Profile)
	assert.Equal(t, e.Metrics, again.Metrics)

	e.RecentPosts[0].Likes = 1
	assert.Equal(t, int64(150), p.RecentPosts[0].Likes)
}

func TestEnrichAllKeepsOrder(t *testing.T) {
	in := []Profile{{ID: "a"}, {ID: "b", Followers: 10, RecentPosts: repeatPosts(1, 1, 0)}, {ID: "c"}}
	out := EnrichAll(in)

	assert.Len(t, out, 3)
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
	}
	assert.Equal(t, 10.0, out[1].EngagementRate)
}

func TestComputeEngagementAveragesRoundHalfUp(t *testing.T) {
	m := ComputeEngagement(Profile{
		Followers:   1000,
		RecentPosts: []Post{{Likes: 1, Comments: 0}, {Likes: 2, Comments: 1}},
	})

	assert.Equal(t, int64(2), m.AvgLikes)
	assert.Equal(t, int64(1), m.AvgComments)
	assert.Equal(t, 0.2, m.EngagementRate)
}
