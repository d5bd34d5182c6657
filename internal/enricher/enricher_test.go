package enricher

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/logger"
)

func TestEnrichPreservesInputOrder(t *testing.T) {
	fetcher := &mockFetcher{
		delay: 2 * time.Millisecond,
		posts: []influencer.Post{{Likes: 40, Comments: 10}},
	}
	e := New(fetcher, 4, nil, logger.NewNopLogger())

	profiles := testProfiles(12)
	var mu sync.Mutex
	var seen []string
	out, err := e.Enrich(context.Background(), profiles, func(r Result) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, r.Profile.Username)
	})
	require.NoError(t, err)

	require.Len(t, out, len(profiles))
	for i, p := range out {
		assert.Equal(t, profiles[i].Username, p.Username)
		assert.Equal(t, 5.0, p.EngagementRate)
	}
	assert.Len(t, seen, len(profiles))
}

func TestEnrichKeepsFailedProfiles(t *testing.T) {
	fetcher := &mockFetcher{
		failFor: map[string]bool{"user1": true},
		posts:   []influencer.Post{{Likes: 100, Comments: 0}},
	}
	e := New(fetcher, 2, nil, logger.NewNopLogger())

	out, err := e.Enrich(context.Background(), testProfiles(3), nil)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, 10.0, out[0].EngagementRate)
	assert.Equal(t, "user1", out[1].Username)
	assert.Zero(t, out[1].EngagementRate)
	assert.Zero(t, out[1].PostsAnalyzed)
	assert.Equal(t, 10.0, out[2].EngagementRate)
}

func TestEnrichWithoutFetcherUsesExistingPosts(t *testing.T) {
	e := New(nil, 3, nil, nil)
	profiles := []influencer.Profile{
		{Username: "a", Followers: 100, RecentPosts: []influencer.Post{{Likes: 5, Comments: 5}}},
		{Username: "b", Followers: 100},
	}

	out, err := e.Enrich(context.Background(), profiles, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, out[0].EngagementRate)
	assert.Zero(t, out[1].EngagementRate)
}

func TestEnrichEmpty(t *testing.T) {
	e := New(&mockFetcher{}, 2, nil, logger.NewNopLogger())
	out, err := e.Enrich(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestEnrichCancelled(t *testing.T) {
	fetcher := &mockFetcher{delay: time.Second}
	e := New(fetcher, 2, nil, logger.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := e.Enrich(ctx, testProfiles(10), nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
