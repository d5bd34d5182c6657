package enricher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/ratelimit"
)

// mockFetcher is a mock implementation of the RapidAPI posts endpoint
type mockFetcher struct {
	delay   time.Duration
	err     error
	failFor map[string]bool
	posts   []influencer.Post
	calls   int32
}

func (m *mockFetcher) GetRecentPosts(ctx context.Context, username string) ([]influencer.Post, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil || m.failFor[username] {
		return nil, errors.Join(m.err, fmt.Errorf("posts unavailable for %s", username))
	}
	return m.posts, nil
}

func (m *mockFetcher) callCount() int {
	return int(atomic.LoadInt32(&m.calls))
}

func testProfiles(n int) []influencer.Profile {
	profiles := make([]influencer.Profile, n)
	for i := range profiles {
		profiles[i] = influencer.Profile{
			Username:  fmt.Sprintf("user%d", i),
			Followers: 1000,
		}
	}
	return profiles
}

func collect(pool *WorkerPool) (*[]Result, *sync.WaitGroup) {
	var results []Result
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for result := range pool.Results() {
			results = append(results, result)
		}
	}()
	return &results, &wg
}

func TestWorkerPoolBasicFunctionality(t *testing.T) {
	fetcher := &mockFetcher{
		delay: 5 * time.Millisecond,
		posts: []influencer.Post{{Likes: 90, Comments: 10}, {Likes: 110, Comments: 10}},
	}
	pool := NewWorkerPool(context.Background(), 3, fetcher, ratelimit.NewTokenBucket(100, time.Second), logger.NewNopLogger())
	pool.Start()
	results, wg := collect(pool)

	numJobs := 10
	for i, p := range testProfiles(numJobs) {
		require.NoError(t, pool.Submit(Job{Index: i, Profile: p}))
	}

	pool.Stop()
	wg.Wait()

	require.Len(t, *results, numJobs)
	for _, r := range *results {
		assert.NoError(t, r.Error)
		assert.True(t, r.Fetched)
		assert.Equal(t, 2, r.Profile.PostsAnalyzed)
		assert.Equal(t, int64(100), r.Profile.AvgLikes)
		assert.Equal(t, 11.0, r.Profile.EngagementRate)
	}
	assert.Equal(t, numJobs, fetcher.callCount())
}

func TestWorkerPoolWithErrors(t *testing.T) {
	log := logger.NewTestLogger()
	fetcher := &mockFetcher{err: errors.New("upstream down")}
	pool := NewWorkerPool(context.Background(), 2, fetcher, nil, log)
	pool.Start()
	results, wg := collect(pool)

	numJobs := 5
	for i, p := range testProfiles(numJobs) {
		require.NoError(t, pool.Submit(Job{Index: i, Profile: p}))
	}

	pool.Stop()
	wg.Wait()

	require.Len(t, *results, numJobs)
	for _, r := range *results {
		assert.Error(t, r.Error)
		assert.False(t, r.Fetched)
		assert.NotNil(t, r.Profile.RecentPosts)
		assert.Empty(t, r.Profile.RecentPosts)
		assert.Zero(t, r.Profile.EngagementRate)
	}
	assert.True(t, log.HasMessage("Worker failed to fetch posts"))
}

func TestWorkerPoolConcurrency(t *testing.T) {
	fetcher := &mockFetcher{delay: 100 * time.Millisecond}
	pool := NewWorkerPool(context.Background(), 5, fetcher, nil, logger.NewNopLogger())
	pool.Start()
	results, wg := collect(pool)

	numJobs := 10
	startTime := time.Now()
	for i, p := range testProfiles(numJobs) {
		require.NoError(t, pool.Submit(Job{Index: i, Profile: p}))
	}

	pool.Stop()
	wg.Wait()
	elapsed := time.Since(startTime)

	// With 5 workers and 10 jobs taking 100ms each, it should take ~200ms
	assert.Less(t, elapsed, 600*time.Millisecond)
	assert.Len(t, *results, numJobs)
}

func TestWorkerPoolSkipsProfilesWithPosts(t *testing.T) {
	fetcher := &mockFetcher{}
	pool := NewWorkerPool(context.Background(), 2, fetcher, nil, logger.NewNopLogger())
	pool.Start()
	results, wg := collect(pool)

	profiles := testProfiles(4)
	profiles[1].RecentPosts = []influencer.Post{{Likes: 50, Comments: 0}}
	profiles[3].RecentPosts = []influencer.Post{{Likes: 10, Comments: 0}}
	for i, p := range profiles {
		require.NoError(t, pool.Submit(Job{Index: i, Profile: p}))
	}

	pool.Stop()
	wg.Wait()

	assert.Len(t, *results, 4)
	assert.Equal(t, 2, fetcher.callCount())
}

func TestWorkerPoolSubmitAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewWorkerPool(ctx, 1, &mockFetcher{}, nil, logger.NewNopLogger())
	cancel()

	// Fill the buffer so the only ready case is cancellation
	for i := 0; i < pool.Workers()*2; i++ {
		pool.jobQueue <- Job{Index: i}
	}
	err := pool.Submit(Job{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, pool.QueueSize())
}
