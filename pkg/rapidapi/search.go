package rapidapi

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/influencer"
)

// SearchUnsupportedMessage is reported when no endpoint pattern yields users.
const SearchUnsupportedMessage = "API search not supported. Please use demo mode or upgrade to a paid API with search capabilities."

// SearchHashtag tries each search endpoint pattern for tag and returns the
// users of the first one that yields any.
func (c *Client) SearchHashtag(ctx context.Context, tag string) ([]influencer.Profile, error) {
	var lastErr error
	for _, path := range SearchPaths(tag) {
		raw, err := c.getJSON(ctx, path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			c.logger.DebugWithFields("search endpoint failed", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			lastErr = err
			continue
		}

		users := extractUsers(raw)
		if len(users) == 0 {
			continue
		}

		profiles := make([]influencer.Profile, 0, len(users))
		for _, u := range users {
			p := c.normalizer.Profile(u)
			if p.Username == "" {
				continue
			}
			profiles = append(profiles, p)
		}
		if len(profiles) > 0 {
			c.logger.InfoWithFields("search endpoint returned users", map[string]interface{}{
				"path":  path,
				"count": len(profiles),
			})
			return profiles, nil
		}
	}

	c.logger.WarnWithFields("no results from any search endpoint", map[string]interface{}{
		"tag":  tag,
		"host": c.host,
	})
	return nil, errs.Unavailable(SearchUnsupportedMessage, lastErr)
}

// Search looks up profiles for an industry keyword across its first
// maxTags hashtags. Tags are searched concurrently and the merged result
// keeps tag order with duplicate usernames removed. A tag that fails is
// skipped as long as another one yields users.
func (c *Client) Search(ctx context.Context, industry string, maxTags int) ([]influencer.Profile, error) {
	tags := HashtagsForIndustry(industry)
	if maxTags > 0 && len(tags) > maxTags {
		tags = tags[:maxTags]
	}

	results := make([][]influencer.Profile, len(tags))
	failures := make([]error, len(tags))

	g, gctx := errgroup.WithContext(ctx)
	for i, tag := range tags {
		g.Go(func() error {
			profiles, err := c.SearchHashtag(gctx, tag)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				failures[i] = err
				return nil
			}
			results[i] = profiles
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var merged []influencer.Profile
	for _, profiles := range results {
		for _, p := range profiles {
			key := strings.ToLower(p.Username)
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, p)
		}
	}

	if len(merged) == 0 {
		for _, err := range failures {
			if err != nil {
				return nil, err
			}
		}
		return nil, errs.Unavailable(SearchUnsupportedMessage, nil)
	}
	return merged, nil
}

// GetUserProfile fetches and normalizes a single profile.
func (c *Client) GetUserProfile(ctx context.Context, username string) (influencer.Profile, error) {
	username = SanitizeUsername(username)
	if !IsValidUsername(username) {
		return influencer.Profile{}, errs.InvalidArgument("username", "invalid Instagram username %q", username)
	}

	raw, err := c.getJSON(ctx, ProfilePath(username))
	if err != nil {
		c.logger.ErrorWithFields("failed to fetch user profile", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		return influencer.Profile{}, err
	}

	obj := unwrapObject(raw)
	if obj == nil {
		return influencer.Profile{}, errs.New(errs.ErrorTypeNotFound, "User not found")
	}
	p := c.normalizer.Profile(obj)
	if p.Username == "" {
		return influencer.Profile{}, errs.New(errs.ErrorTypeNotFound, "User not found")
	}
	return p, nil
}

// GetRecentPosts fetches the most recent posts of username.
func (c *Client) GetRecentPosts(ctx context.Context, username string) ([]influencer.Post, error) {
	username = SanitizeUsername(username)
	if !IsValidUsername(username) {
		return nil, errs.InvalidArgument("username", "invalid Instagram username %q", username)
	}

	raw, err := c.getJSON(ctx, PostsPath(username, c.postsCount))
	if err != nil {
		return nil, err
	}
	return c.normalizer.Posts(raw), nil
}
