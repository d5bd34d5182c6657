package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/logger"
)

func TestExponentialBackoff(t *testing.T) {
	backoff := &ExponentialBackoff{
		BaseDelay:    100 * time.Millisecond,
		MaxDelay:     1 * time.Second,
		Multiplier:   2.0,
		JitterFactor: 0.0,
	}

	tests := []struct {
		attempt     int
		expected    time.Duration
		description string
	}{
		{0, 0, "No attempt"},
		{1, 100 * time.Millisecond, "First attempt"},
		{2, 200 * time.Millisecond, "Second attempt"},
		{4, 800 * time.Millisecond, "Fourth attempt"},
		{5, 1 * time.Second, "Fifth attempt (capped at max)"},
		{9, 1 * time.Second, "Ninth attempt (still capped)"},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			if delay := backoff.NextDelay(test.attempt); delay != test.expected {
				t.Errorf("Expected delay %v, got %v", test.expected, delay)
			}
		})
	}
}

func TestExponentialBackoffJitterStaysInRange(t *testing.T) {
	backoff := &ExponentialBackoff{
		BaseDelay:    100 * time.Millisecond,
		MaxDelay:     1 * time.Second,
		Multiplier:   2.0,
		JitterFactor: 0.3,
	}

	for i := 0; i < 50; i++ {
		delay := backoff.NextDelay(2)
		if delay < 140*time.Millisecond || delay > 260*time.Millisecond {
			t.Fatalf("delay %v outside jitter range", delay)
		}
	}
}

func TestRetryWithSuccess(t *testing.T) {
	attempts := 0
	op := func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("temporary error")
		}
		return nil
	}

	var retried []int
	cfg := &Config{
		MaxAttempts: 5,
		Backoff:     &ConstantBackoff{Delay: time.Millisecond},
		OnRetry:     func(attempt int, err error, delay time.Duration) { retried = append(retried, attempt) },
		Logger:      logger.NewNopLogger(),
	}

	if err := Do(context.Background(), op, cfg); err != nil {
		t.Errorf("Expected success after retries, got error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
	if len(retried) != 2 {
		t.Errorf("Expected OnRetry twice, got %v", retried)
	}
}

func TestRetryWithMaxAttemptsExceeded(t *testing.T) {
	attempts := 0
	persistent := errors.New("persistent error")
	op := func(ctx context.Context) error {
		attempts++
		return persistent
	}

	log := logger.NewTestLogger()
	cfg := &Config{
		MaxAttempts: 3,
		Backoff:     &ConstantBackoff{Delay: time.Millisecond},
		Logger:      log,
	}

	err := Do(context.Background(), op, cfg)
	if !errors.Is(err, persistent) {
		t.Errorf("Expected wrapped persistent error, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
	if !log.HasMessage("max retry attempts exceeded") {
		t.Error("Expected exhaustion to be logged")
	}
}

func TestRetryWithNonRetryableError(t *testing.T) {
	attempts := 0
	authError := errs.FromStatus(401, "invalid key")

	op := func(ctx context.Context) error {
		attempts++
		return authError
	}

	cfg := &Config{
		MaxAttempts: 5,
		Backoff:     &ConstantBackoff{Delay: time.Millisecond},
		RetryIf:     DefaultRetryIf,
	}

	err := Do(context.Background(), op, cfg)
	if err != authError {
		t.Errorf("Expected auth error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt (no retry for auth error), got %d", attempts)
	}
}

func TestRetryWithContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	op := func(ctx context.Context) error {
		attempts++
		if attempts == 2 {
			cancel()
		}
		return errors.New("error")
	}

	cfg := &Config{
		MaxAttempts: 5,
		Backoff:     &ConstantBackoff{Delay: 50 * time.Millisecond},
	}

	err := Do(ctx, op, cfg)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected cancellation error, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts before cancellation, got %d", attempts)
	}
}

func TestDefaultRetryIf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), true},
		{"cancelled", context.Canceled, false},
		{"server error", errs.FromStatus(502, "bad gateway"), true},
		{"rate limited", errs.FromStatus(429, "slow down"), true},
		{"not found", errs.FromStatus(404, "missing"), false},
		{"invalid argument", errs.InvalidArgument("username", "bad"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultRetryIf(tt.err); got != tt.want {
				t.Errorf("DefaultRetryIf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorTypeBackoff(t *testing.T) {
	etb := NewErrorTypeBackoff()

	network, ok := etb.For(errs.New(errs.ErrorTypeNetwork, "reset")).(*ExponentialBackoff)
	if !ok || network.BaseDelay != 1*time.Second {
		t.Errorf("Expected network backoff with 1s base delay, got %#v", network)
	}

	rateLimit, ok := etb.For(errs.FromStatus(429, "")).(*ExponentialBackoff)
	if !ok || rateLimit.BaseDelay != 30*time.Second {
		t.Errorf("Expected rate limit backoff with 30s base delay, got %#v", rateLimit)
	}

	if etb.For(errors.New("untyped")) != etb.DefaultBackoff {
		t.Error("Expected default backoff for untyped errors")
	}

	scaled := etb.Scaled(0.01)
	if eb := scaled.RateLimitBackoff.(*ExponentialBackoff); eb.BaseDelay != 300*time.Millisecond {
		t.Errorf("Expected scaled base delay of 300ms, got %v", eb.BaseDelay)
	}
	if eb := etb.RateLimitBackoff.(*ExponentialBackoff); eb.BaseDelay != 30*time.Second {
		t.Error("Scaled() modified the original strategy")
	}
}

func TestBackoffForOverridesDefault(t *testing.T) {
	var delays []time.Duration
	cfg := &Config{
		MaxAttempts: 3,
		Backoff:     &ConstantBackoff{Delay: time.Hour},
		BackoffFor:  func(error) BackoffStrategy { return &ConstantBackoff{Delay: time.Millisecond} },
		OnRetry:     func(_ int, _ error, d time.Duration) { delays = append(delays, d) },
	}

	_ = Do(context.Background(), func(context.Context) error { return errors.New("x") }, cfg)
	if len(delays) != 2 || delays[0] != time.Millisecond {
		t.Errorf("Expected BackoffFor delays, got %v", delays)
	}
}

func TestDoWithResult(t *testing.T) {
	attempts := 0
	op := func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 2 {
			return "", errors.New("temporary error")
		}
		return "success", nil
	}

	cfg := &Config{
		MaxAttempts: 3,
		Backoff:     &ConstantBackoff{Delay: time.Millisecond},
	}

	result, err := DoWithResult(context.Background(), op, cfg)
	if err != nil {
		t.Errorf("Expected success, got error: %v", err)
	}
	if result != "success" {
		t.Errorf("Expected 'success', got '%s'", result)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
}

func TestWait(t *testing.T) {
	if err := Wait(context.Background(), 0); err != nil {
		t.Errorf("Wait(0) = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Wait(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() on cancelled context = %v", err)
	}
}
