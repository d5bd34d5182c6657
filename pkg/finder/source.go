package finder

import (
	"context"

	"influencerfinder/pkg/config"
	"influencerfinder/pkg/influencer"
)

// ProfileSource supplies candidate profiles.
type ProfileSource interface {
	// Mode is config.ModeDemo or config.ModeLive.
	Mode() string
	// Candidates returns the profiles matching c. Each source decides
	// how each criterion applies to its data.
	Candidates(ctx context.Context, c influencer.Criteria) ([]influencer.Profile, error)
	// Lookup returns a single profile by username.
	Lookup(ctx context.Context, username string) (influencer.Profile, error)
}

// LiveClient is the part of the RapidAPI client a LiveSource uses.
type LiveClient interface {
	Search(ctx context.Context, industry string, maxTags int) ([]influencer.Profile, error)
	GetUserProfile(ctx context.Context, username string) (influencer.Profile, error)
	GetRecentPosts(ctx context.Context, username string) ([]influencer.Post, error)
}

// unconfiguredSource reports a setup problem on every call so a server
// can start and explain what is missing per request.
type unconfiguredSource struct {
	mode string
	err  error
}

func (s unconfiguredSource) Mode() string { return s.mode }

func (s unconfiguredSource) Candidates(context.Context, influencer.Criteria) ([]influencer.Profile, error) {
	return nil, s.err
}

func (s unconfiguredSource) Lookup(context.Context, string) (influencer.Profile, error) {
	return influencer.Profile{}, s.err
}

var _ ProfileSource = unconfiguredSource{mode: config.ModeLive}
