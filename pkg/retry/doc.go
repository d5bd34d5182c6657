// Package retry retries transient failures with backoff.
//
// The RapidAPI client wraps every request in Do. Typed errors from
// influencerfinder/pkg/errors decide whether a retry happens: network,
// rate limit and 5xx errors are retried, everything else returns at once.
//
//	cfg := &retry.Config{
//		MaxAttempts: 3,
//		BackoffFor:  retry.NewErrorTypeBackoff().Scaled(0.1).For,
//		Logger:      log,
//	}
//	body, err := retry.DoWithResult(ctx, fetch, cfg)
//
// Delays are interrupted by context cancellation.
package retry
