package rapidapi

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// HeaderKey carries the RapidAPI subscription key
	HeaderKey = "X-RapidAPI-Key"

	// HeaderHost names the RapidAPI provider being called
	HeaderHost = "X-RapidAPI-Host"

	// DefaultPostsCount is the number of recent posts requested per profile
	DefaultPostsCount = 12

	// MaxUsernameLength is the longest username Instagram accepts
	MaxUsernameLength = 30
)

// industryHashtags is ordered: the first key contained in the industry wins.
var industryHashtags = []struct {
	key  string
	tags []string
}{
	{"fitness", []string{"fitness", "fitnessmodel", "fitnessmotivation", "gym", "workout"}},
	{"beauty", []string{"beauty", "makeup", "skincare", "beautyblogger", "makeuptutorial"}},
	{"fashion", []string{"fashion", "style", "fashionblogger", "ootd", "fashionista"}},
	{"food", []string{"food", "foodie", "foodblogger", "cooking", "recipes"}},
	{"travel", []string{"travel", "wanderlust", "travelphotography", "adventure", "explore"}},
	{"lifestyle", []string{"lifestyle", "lifestyleblogger", "dailylife", "inspo"}},
	{"technology", []string{"tech", "technology", "gadgets", "techreview", "innovation"}},
	{"sports", []string{"sports", "athlete", "sportsnews", "fitness", "training"}},
}

// HashtagsForIndustry returns the hashtags searched for an industry keyword.
// Unknown industries search for the keyword itself with whitespace removed.
func HashtagsForIndustry(industry string) []string {
	lower := strings.ToLower(strings.TrimSpace(industry))
	for _, entry := range industryHashtags {
		if strings.Contains(lower, entry.key) {
			tags := make([]string, len(entry.tags))
			copy(tags, entry.tags)
			return tags
		}
	}
	return []string{strings.Join(strings.Fields(lower), "")}
}

// SearchPaths returns the endpoint patterns tried, in order, for a hashtag.
func SearchPaths(tag string) []string {
	escaped := url.PathEscape(tag)
	return []string{
		"/hashtag/" + escaped,
		"/tag/" + escaped,
		"/search?query=" + url.QueryEscape(tag),
		"/v1/hashtag/" + escaped + "/posts",
	}
}

// ProfilePath returns the endpoint for a user's profile
func ProfilePath(username string) string {
	return "/profile/" + url.PathEscape(username)
}

// PostsPath returns the endpoint for a user's most recent posts
func PostsPath(username string, count int) string {
	if count <= 0 {
		count = DefaultPostsCount
	}
	return fmt.Sprintf("/posts/%s?count=%d", url.PathEscape(username), count)
}

// BaseURLForHost returns the HTTPS base URL of a RapidAPI host
func BaseURLForHost(host string) string {
	host = strings.TrimSuffix(strings.TrimSpace(host), "/")
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return host
	}
	return "https://" + host
}

// IsValidUsername checks if a username is valid according to Instagram rules
func IsValidUsername(username string) bool {
	if username == "" || len(username) > MaxUsernameLength {
		return false
	}

	// Instagram usernames can only contain letters, numbers, periods, and underscores
	for _, char := range username {
		if !((char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') ||
			char == '.' || char == '_') {
			return false
		}
	}

	return true
}

// SanitizeUsername strips a leading @, surrounding spaces and trailing slashes
func SanitizeUsername(username string) string {
	username = strings.TrimSpace(username)
	username = strings.TrimPrefix(username, "@")
	return strings.TrimRight(username, "/ ")
}
