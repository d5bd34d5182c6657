package enricher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/ratelimit"
)

// Job asks for the recent posts of one profile. Index is the profile's
// position in the caller's slice.
type Job struct {
	Index   int
	Profile influencer.Profile
}

// Result represents the result of an enrichment job
type Result struct {
	Job      Job
	Profile  influencer.EnrichedProfile
	Fetched  bool
	Error    error
	Duration time.Duration
}

// PostFetcher loads the most recent posts of a user
type PostFetcher interface {
	GetRecentPosts(ctx context.Context, username string) ([]influencer.Post, error)
}

// WorkerPool manages concurrent enrichment workers
type WorkerPool struct {
	numWorkers  int
	jobQueue    chan Job
	resultQueue chan Result
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	fetcher     PostFetcher
	rateLimiter ratelimit.Limiter
	logger      logger.Logger
}

// NewWorkerPool creates a new enrichment worker pool bound to ctx
func NewWorkerPool(
	ctx context.Context,
	numWorkers int,
	fetcher PostFetcher,
	rateLimiter ratelimit.Limiter,
	log logger.Logger,
) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	ctx, cancel := context.WithCancel(ctx)

	return &WorkerPool{
		numWorkers:  numWorkers,
		jobQueue:    make(chan Job, numWorkers*2), // Buffer size = 2x workers
		resultQueue: make(chan Result, numWorkers),
		ctx:         ctx,
		cancel:      cancel,
		fetcher:     fetcher,
		rateLimiter: rateLimiter,
		logger:      logger.OrDefault(log),
	}
}

// Start initializes and starts all workers
func (wp *WorkerPool) Start() {
	wp.logger.DebugWithFields("Starting enrichment pool", map[string]interface{}{
		"num_workers": wp.numWorkers,
	})

	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// Stop closes the job queue, waits for the workers and closes Results.
// Submit must not be called concurrently with or after Stop.
func (wp *WorkerPool) Stop() {
	close(wp.jobQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
	wp.cancel()

	wp.logger.Debug("Enrichment pool stopped")
}

// Submit adds a new job to the queue
func (wp *WorkerPool) Submit(job Job) error {
	select {
	case wp.jobQueue <- job:
		return nil
	case <-wp.ctx.Done():
		return fmt.Errorf("enrichment pool is shutting down: %w", wp.ctx.Err())
	}
}

// Results returns the result channel for consuming enrichment results
func (wp *WorkerPool) Results() <-chan Result {
	return wp.resultQueue
}

// QueueSize returns the current number of jobs in the queue
func (wp *WorkerPool) QueueSize() int {
	return len(wp.jobQueue)
}

// Workers returns the number of workers
func (wp *WorkerPool) Workers() int {
	return wp.numWorkers
}

// worker is the main worker routine
func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for job := range wp.jobQueue {
		select {
		case <-wp.ctx.Done():
			return
		default:
		}

		result := wp.processJob(job, id)

		select {
		case wp.resultQueue <- result:
		case <-wp.ctx.Done():
			return
		}
	}
}

// processJob fetches posts for one profile. A failed fetch still yields a
// result with zero metrics so one bad account never drops a profile.
func (wp *WorkerPool) processJob(job Job, workerID int) Result {
	start := time.Now()
	profile := job.Profile.Clone()
	result := Result{Job: job}

	// Profiles that arrive with posts need no upstream call
	if len(profile.RecentPosts) > 0 || wp.fetcher == nil {
		result.Profile = influencer.Enrich(profile)
		result.Duration = time.Since(start)
		return result
	}

	if wp.rateLimiter != nil {
		if err := wp.rateLimiter.Wait(wp.ctx); err != nil {
			result.Error = err
			result.Profile = influencer.Enrich(profile)
			result.Duration = time.Since(start)
			return result
		}
	}

	posts, err := wp.fetcher.GetRecentPosts(wp.ctx, profile.Username)
	result.Duration = time.Since(start)
	if err != nil {
		result.Error = fmt.Errorf("fetch posts for %s: %w", profile.Username, err)
		profile.RecentPosts = []influencer.Post{}

		wp.logger.WarnWithFields("Worker failed to fetch posts", map[string]interface{}{
			"worker_id": workerID,
			"username":  profile.Username,
			"error":     err.Error(),
			"duration":  result.Duration,
		})
	} else {
		profile.RecentPosts = posts
		result.Fetched = true

		wp.logger.DebugWithFields("Worker fetched posts", map[string]interface{}{
			"worker_id": workerID,
			"username":  profile.Username,
			"posts":     len(posts),
			"duration":  result.Duration,
		})
	}

	result.Profile = influencer.Enrich(profile)
	return result
}
