package finder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"influencerfinder/internal/enricher"
	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/ratelimit"
)

// Request is a search: filter criteria plus ordering.
type Request struct {
	influencer.Criteria
	SortBy    string `json:"sort_by,omitempty"`
	SortOrder string `json:"sort_order,omitempty"`
}

// Response is the outcome of a search.
type Response struct {
	Mode     string                       `json:"mode"`
	Request  Request                      `json:"filters"`
	Profiles []influencer.EnrichedProfile `json:"data"`
	Duration time.Duration                `json:"-"`
}

// Progress stages reported during a search.
const (
	StageSource  = "source"
	StageFilter  = "filter"
	StageProfile = "profile"
)

// Progress describes one step of a running search. Profile is set for
// StageProfile only.
type Progress struct {
	Stage   string
	Message string
	Profile *influencer.EnrichedProfile
	Done    int
	Total   int
}

// ProgressFunc receives progress updates. It is called from the goroutine
// running the search.
type ProgressFunc func(Progress)

// Options tune a Service.
type Options struct {
	// Workers is the number of concurrent post fetches
	Workers int
	// Limiter throttles post fetches
	Limiter ratelimit.Limiter
	Logger  logger.Logger
}

// Service runs searches and single-profile lookups against a source.
type Service struct {
	source   ProfileSource
	enricher *enricher.Enricher
	logger   logger.Logger
}

// New creates a Service. Sources that can fetch posts themselves are used
// by the enricher for profiles that arrive without any.
func New(source ProfileSource, opts Options) *Service {
	log := logger.OrDefault(opts.Logger)
	fetcher, _ := source.(enricher.PostFetcher)
	return &Service{
		source:   source,
		enricher: enricher.New(fetcher, opts.Workers, opts.Limiter, log),
		logger:   log,
	}
}

// Mode returns the mode of the underlying source.
func (s *Service) Mode() string {
	return s.source.Mode()
}

// Search runs a search without progress reporting.
func (s *Service) Search(ctx context.Context, req Request) (*Response, error) {
	return s.SearchWithProgress(ctx, req, nil)
}

// SearchWithProgress takes the source's matches for req, computes
// engagement for each and sorts the result. Invalid criteria are
// rejected before the source is consulted.
func (s *Service) SearchWithProgress(ctx context.Context, req Request, progress ProgressFunc) (*Response, error) {
	start := time.Now()
	report := func(p Progress) {
		if progress != nil {
			progress(p)
		}
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	report(Progress{Stage: StageSource, Message: fmt.Sprintf("Loading %s profiles", s.source.Mode())})
	matched, err := s.source.Candidates(ctx, req.Criteria)
	if err != nil {
		return nil, err
	}
	report(Progress{
		Stage:   StageFilter,
		Message: fmt.Sprintf("%d profiles match the filters", len(matched)),
		Total:   len(matched),
	})

	done := 0
	enriched, err := s.enricher.Enrich(ctx, matched, func(r enricher.Result) {
		done++
		p := r.Profile
		report(Progress{
			Stage:   StageProfile,
			Message: fmt.Sprintf("Analyzed @%s", p.Username),
			Profile: &p,
			Done:    done,
			Total:   len(matched),
		})
	})
	if err != nil {
		return nil, err
	}

	sorted := influencer.Sort(enriched, influencer.ParseSortField(req.SortBy), influencer.ParseOrder(req.SortOrder))

	resp := &Response{
		Mode:     s.source.Mode(),
		Request:  req,
		Profiles: sorted,
		Duration: time.Since(start),
	}
	logger.LogSearch(s.logger, resp.Mode, req.Industry, len(sorted), resp.Duration)
	return resp, nil
}

// Engagement looks up a single profile and computes its metrics.
func (s *Service) Engagement(ctx context.Context, username string) (influencer.EnrichedProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" || username == "@" {
		return influencer.EnrichedProfile{}, errs.InvalidArgument("username", "Username is required")
	}

	p, err := s.source.Lookup(ctx, username)
	if err != nil {
		return influencer.EnrichedProfile{}, err
	}
	return influencer.Enrich(p), nil
}
