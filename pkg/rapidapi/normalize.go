package rapidapi

import (
	"math"
	"strconv"
	"strings"

	"influencerfinder/pkg/heuristics"
	"influencerfinder/pkg/influencer"
)

// DefaultCategory is assigned to profiles whose payload carries none.
const DefaultCategory = "general"

// Normalizer converts provider payloads into profiles. Field names differ
// between providers, so every attribute has a list of fallback keys and the
// first non-empty value wins.
type Normalizer struct {
	Classifier heuristics.NameClassifier
	Locator    heuristics.LocationExtractor
}

// NewNormalizer returns a normalizer using the default heuristics.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		Classifier: heuristics.DefaultClassifier(),
		Locator:    heuristics.DefaultLocationExtractor(),
	}
}

// Profile normalizes a single user object.
func (n *Normalizer) Profile(raw map[string]interface{}) influencer.Profile {
	bio := firstString(raw, "biography", "bio")
	fullName := firstString(raw, "full_name", "name")

	p := influencer.Profile{
		ID:            firstString(raw, "id", "user_id", "pk"),
		Username:      firstString(raw, "username", "handle"),
		FullName:      fullName,
		ProfilePicURL: firstString(raw, "profile_pic_url", "avatar"),
		Biography:     bio,
		Followers:     firstInt(raw, "followers", "follower_count"),
		Following:     firstInt(raw, "following", "following_count"),
		PostsCount:    firstInt(raw, "posts_count", "media_count"),
		IsVerified:    truthy(raw["is_verified"]),
		Category:      firstString(raw, "category"),
		Country:       heuristics.UnknownCountry,
		Gender:        heuristics.GenderUnknown,
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if n.Locator != nil {
		p.Country = n.Locator.Extract(bio, firstString(raw, "location", "city_name"))
	}
	if n.Classifier != nil {
		p.Gender = n.Classifier.Classify(fullName, bio)
	}
	return p
}

// Posts normalizes a posts payload. Anything that is not a list of objects,
// directly or under a known wrapper key, yields no posts.
func (n *Normalizer) Posts(raw interface{}) []influencer.Post {
	items := extractList(raw, "posts", "data", "items")
	posts := make([]influencer.Post, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		posts = append(posts, influencer.Post{
			Likes:    firstInt(m, "likes", "like_count"),
			Comments: firstInt(m, "comments", "comment_count"),
		})
	}
	return posts
}

// extractUsers reads the user list of a search response.
func extractUsers(raw interface{}) []map[string]interface{} {
	items := extractList(raw, "users", "data", "items")
	users := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		// Hashtag feeds list posts with the author nested under "user" or "owner".
		if firstString(m, "username", "handle") == "" {
			if nested := nestedObject(m, "user", "owner"); nested != nil {
				m = nested
			}
		}
		users = append(users, m)
	}
	return users
}

func extractList(raw interface{}, keys ...string) []interface{} {
	switch v := raw.(type) {
	case []interface{}:
		return v
	case map[string]interface{}:
		for _, key := range keys {
			if list, ok := v[key].([]interface{}); ok && len(list) > 0 {
				return list
			}
		}
	}
	return nil
}

// unwrapObject returns the user object of a profile response, looking
// inside "data" or "user" wrappers when present.
func unwrapObject(raw interface{}) map[string]interface{} {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	if firstString(m, "username", "handle") != "" {
		return m
	}
	if nested := nestedObject(m, "data", "user"); nested != nil {
		if inner := nestedObject(nested, "user"); inner != nil {
			return inner
		}
		return nested
	}
	return m
}

func nestedObject(m map[string]interface{}, keys ...string) map[string]interface{} {
	for _, key := range keys {
		if nested, ok := m[key].(map[string]interface{}); ok {
			return nested
		}
	}
	return nil
}

func firstString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func firstInt(m map[string]interface{}, keys ...string) int64 {
	for _, key := range keys {
		if n := toInt64(m[key]); n != 0 {
			return n
		}
	}
	return 0
}

// toInt64 accepts JSON numbers, display strings like "1.2K" and objects
// of the form {"count": n}.
func toInt64(v interface{}) int64 {
	switch val := v.(type) {
	case float64:
		if val < 0 || math.IsNaN(val) {
			return 0
		}
		return int64(math.Round(val))
	case int:
		return toInt64(float64(val))
	case int64:
		return toInt64(float64(val))
	case string:
		n, err := heuristics.ParseCount(val)
		if err != nil {
			return 0
		}
		return n
	case map[string]interface{}:
		return toInt64(val["count"])
	}
	return 0
}

func truthy(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, _ := strconv.ParseBool(val)
		return b
	case float64:
		return val != 0
	}
	return false
}
