// Package enricher attaches engagement metrics to profiles, fetching
// recent posts concurrently when a profile arrives without them.
package enricher

import (
	"context"
	"time"

	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/ratelimit"
)

// Enricher runs a WorkerPool per call.
type Enricher struct {
	workers int
	fetcher PostFetcher
	limiter ratelimit.Limiter
	logger  logger.Logger
}

// New returns an Enricher. fetcher may be nil when every profile already
// carries its posts.
func New(fetcher PostFetcher, workers int, limiter ratelimit.Limiter, log logger.Logger) *Enricher {
	if workers < 1 {
		workers = 1
	}
	return &Enricher{
		workers: workers,
		fetcher: fetcher,
		limiter: limiter,
		logger:  logger.OrDefault(log),
	}
}

// Enrich returns the enriched profiles in input order. onResult, when not
// nil, is called from the calling goroutine as each profile completes.
// Only context cancellation is reported as an error; failed fetches give
// the profile empty posts.
func (e *Enricher) Enrich(ctx context.Context, profiles []influencer.Profile, onResult func(Result)) ([]influencer.EnrichedProfile, error) {
	out := make([]influencer.EnrichedProfile, len(profiles))
	if len(profiles) == 0 {
		return out, nil
	}

	start := time.Now()
	workers := e.workers
	if workers > len(profiles) {
		workers = len(profiles)
	}

	pool := NewWorkerPool(ctx, workers, e.fetcher, e.limiter, e.logger)
	pool.Start()

	submitted := make(chan struct{})
	go func() {
		defer close(submitted)
		for i, p := range profiles {
			if err := pool.Submit(Job{Index: i, Profile: p}); err != nil {
				return
			}
		}
	}()

	var fetched, failed int
	received := 0
	for received < len(profiles) {
		select {
		case result := <-pool.Results():
			received++
			out[result.Job.Index] = result.Profile
			if result.Fetched {
				fetched++
			}
			if result.Error != nil {
				failed++
			}
			if onResult != nil {
				onResult(result)
			}
		case <-ctx.Done():
			<-submitted
			pool.Stop()
			return nil, ctx.Err()
		}
	}

	<-submitted
	pool.Stop()

	e.logger.DebugWithFields("Enrichment completed", map[string]interface{}{
		"profiles": len(profiles),
		"fetched":  fetched,
		"failed":   failed,
		"duration": time.Since(start),
	})
	return out, nil
}
