package finder

import (
	"context"
	"errors"

	"influencerfinder/pkg/config"
	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/logger"
)

// DefaultMaxProfiles caps how many live candidates get their posts fetched.
const DefaultMaxProfiles = 20

// LiveSource searches a RapidAPI provider.
type LiveSource struct {
	client      LiveClient
	maxProfiles int
	maxHashtags int
	logger      logger.Logger
}

// NewLiveSource returns a source backed by client. maxProfiles <= 0 uses
// DefaultMaxProfiles and maxHashtags <= 0 searches the first hashtag only.
func NewLiveSource(client LiveClient, maxProfiles, maxHashtags int, log logger.Logger) *LiveSource {
	if maxProfiles <= 0 {
		maxProfiles = DefaultMaxProfiles
	}
	if maxHashtags <= 0 {
		maxHashtags = 1
	}
	return &LiveSource{
		client:      client,
		maxProfiles: maxProfiles,
		maxHashtags: maxHashtags,
		logger:      logger.OrDefault(log),
	}
}

func (*LiveSource) Mode() string { return config.ModeLive }

// Candidates searches the hashtags of c.Industry. The hashtag search
// stands in for the industry constraint, so profiles are pre-filtered on
// the remaining criteria only and then capped at maxProfiles.
func (s *LiveSource) Candidates(ctx context.Context, c influencer.Criteria) ([]influencer.Profile, error) {
	found, err := s.client.Search(ctx, c.Industry, s.maxHashtags)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if errs.IsUnavailable(err) || errs.IsType(err, errs.ErrorTypeConfig) {
			return nil, err
		}
		return nil, errs.Unavailable("live search failed", err)
	}

	scoped := c
	scoped.Industry = ""
	matched, err := influencer.Filter(found, scoped)
	if err != nil {
		return nil, err
	}

	if len(matched) > s.maxProfiles {
		s.logger.DebugWithFields("capping live candidates", map[string]interface{}{
			"found": len(matched),
			"limit": s.maxProfiles,
		})
		matched = matched[:s.maxProfiles]
	}

	return matched, nil
}

// Lookup fetches a profile and its recent posts. A failed posts request
// leaves the profile with no posts.
func (s *LiveSource) Lookup(ctx context.Context, username string) (influencer.Profile, error) {
	p, err := s.client.GetUserProfile(ctx, username)
	if err != nil {
		return influencer.Profile{}, err
	}

	posts, err := s.client.GetRecentPosts(ctx, p.Username)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return influencer.Profile{}, ctxErr
		}
		s.logger.WarnWithFields("failed to fetch posts", map[string]interface{}{
			"username": p.Username,
			"error":    err.Error(),
		})
		posts = []influencer.Post{}
	}
	p.RecentPosts = posts
	return p, nil
}

// GetRecentPosts lets the enricher fetch posts through the same client.
func (s *LiveSource) GetRecentPosts(ctx context.Context, username string) ([]influencer.Post, error) {
	return s.client.GetRecentPosts(ctx, username)
}
