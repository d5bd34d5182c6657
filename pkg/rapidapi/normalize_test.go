package rapidapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"influencerfinder/pkg/heuristics"
)

func TestNormalizerProfileFallbacks(t *testing.T) {
	n := NewNormalizer()

	p := n.Profile(map[string]interface{}{
		"user_id":        "u-1",
		"handle":         "chris_cooks",
		"name":           "Chris Baker",
		"avatar":         "https://cdn.test/a.jpg",
		"bio":            "Recipes from Toronto",
		"followers":      float64(0),
		"follower_count": "3.5K",
		"following":      120,
		"posts_count":    0,
		"media_count":    88,
		"category":       "food",
	})

	assert.Equal(t, "u-1", p.ID)
	assert.Equal(t, "chris_cooks", p.Username)
	assert.Equal(t, "Chris Baker", p.FullName)
	assert.Equal(t, "https://cdn.test/a.jpg", p.ProfilePicURL)
	assert.Equal(t, int64(3500), p.Followers)
	assert.Equal(t, int64(120), p.Following)
	assert.Equal(t, int64(88), p.PostsCount)
	assert.Equal(t, "food", p.Category)
	assert.Equal(t, "Canada", p.Country)
	assert.Equal(t, heuristics.GenderMale, p.Gender)
	assert.False(t, p.IsVerified)
}

func TestNormalizerUsesLocationField(t *testing.T) {
	n := NewNormalizer()
	p := n.Profile(map[string]interface{}{"username": "x", "location": "Paris"})
	assert.Equal(t, "France", p.Country)
	assert.Equal(t, heuristics.GenderUnknown, p.Gender)
}

func TestNormalizerWithoutHeuristics(t *testing.T) {
	n := &Normalizer{}
	p := n.Profile(map[string]interface{}{"username": "x", "full_name": "Emma", "bio": "London"})
	assert.Equal(t, heuristics.UnknownCountry, p.Country)
	assert.Equal(t, heuristics.GenderUnknown, p.Gender)
}

func TestNormalizerPosts(t *testing.T) {
	n := NewNormalizer()

	assert.Empty(t, n.Posts(nil))
	assert.Empty(t, n.Posts("nope"))
	assert.Empty(t, n.Posts(map[string]interface{}{"posts": []interface{}{}}))

	posts := n.Posts(map[string]interface{}{
		"posts": []interface{}{
			map[string]interface{}{"likes": "2K", "comments": 15},
			"skipped",
		},
	})
	assert.Len(t, posts, 1)
	assert.Equal(t, int64(2000), posts[0].Likes)
	assert.Equal(t, int64(15), posts[0].Comments)
}

func TestToInt64(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  int64
	}{
		{"number", float64(4500), 4500},
		{"fraction rounds", float64(10.6), 11},
		{"negative", float64(-5), 0},
		{"comma string", "4,500", 4500},
		{"suffix string", "1.2M", 1200000},
		{"garbage string", "lots", 0},
		{"count object", map[string]interface{}{"count": float64(7)}, 7},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toInt64(tt.value))
		})
	}
}
