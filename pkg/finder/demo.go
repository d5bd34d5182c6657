package finder

import (
	"context"

	"influencerfinder/pkg/catalog"
	"influencerfinder/pkg/config"
	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/influencer"
)

// DemoSource serves the bundled demo catalog.
type DemoSource struct{}

// NewDemoSource returns a source backed by the demo catalog.
func NewDemoSource() *DemoSource {
	return &DemoSource{}
}

func (*DemoSource) Mode() string { return config.ModeDemo }

// Candidates filters the catalog on every criterion, industry included.
func (*DemoSource) Candidates(ctx context.Context, c influencer.Criteria) ([]influencer.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return influencer.Filter(catalog.All(), c)
}

// Lookup finds a catalog profile by username, ignoring case and a leading @.
func (*DemoSource) Lookup(ctx context.Context, username string) (influencer.Profile, error) {
	if err := ctx.Err(); err != nil {
		return influencer.Profile{}, err
	}
	p, ok := catalog.Lookup(username)
	if !ok {
		return influencer.Profile{}, errs.New(errs.ErrorTypeNotFound, "User not found")
	}
	return p, nil
}
