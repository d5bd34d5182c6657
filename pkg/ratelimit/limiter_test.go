package ratelimit

import (
	"context"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTokenBucket(t *testing.T) {
	tb := NewTokenBucket(5, 200*time.Millisecond)

	for i := 0; i < 5; i++ {
		if !tb.Allow() {
			t.Errorf("Expected token %d to be available", i+1)
		}
	}

	if tb.Allow() {
		t.Error("Expected no more tokens to be available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := tb.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	tb.tokens = 0
	tb.Reset()
	if tb.tokens != tb.capacity {
		t.Error("Expected tokens to be reset to capacity")
	}
}

func TestTokenBucketWaitHonorsContext(t *testing.T) {
	tb := NewTokenBucket(1, time.Hour)
	tb.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := tb.Wait(ctx); err == nil {
		t.Error("Expected Wait() to fail when the context expires")
	}
}

func TestSlidingWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	sw := NewSlidingWindow(3, time.Second)
	sw.now = clock.now

	for i := 0; i < 3; i++ {
		if !sw.Allow() {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		clock.advance(100 * time.Millisecond)
	}

	allowed, remaining, resetAt := sw.Take()
	if allowed || remaining != 0 {
		t.Errorf("Expected request to be denied, got allowed=%v remaining=%d", allowed, remaining)
	}
	if want := time.Unix(1001, 0); !resetAt.Equal(want) {
		t.Errorf("resetAt = %v, want %v", resetAt, want)
	}

	clock.advance(800 * time.Millisecond)
	if !sw.Allow() {
		t.Error("Expected request to be allowed after the window slides")
	}

	sw.Reset()
	if len(sw.requests) != 0 {
		t.Error("Expected requests to be cleared after reset")
	}
}

func TestKeyedLimiter(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	k := NewKeyedLimiter(2, time.Minute)
	k.now = clock.now

	if !k.Allow("10.0.0.1") || !k.Allow("10.0.0.1") {
		t.Fatal("Expected first two requests to be allowed")
	}
	if k.Allow("10.0.0.1") {
		t.Error("Expected third request from the same key to be denied")
	}
	if !k.Allow("10.0.0.2") {
		t.Error("Expected a different key to have its own window")
	}

	if n := k.Prune(); n != 0 {
		t.Errorf("Prune() removed %d active keys", n)
	}

	clock.advance(2 * time.Minute)
	if n := k.Prune(); n != 2 {
		t.Errorf("Prune() = %d, want 2", n)
	}
	if k.Len() != 0 {
		t.Errorf("Len() = %d after prune", k.Len())
	}
	if !k.Allow("10.0.0.1") {
		t.Error("Expected key to be allowed again after its window expired")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)

	if !rl.Allow() || !rl.Allow() {
		t.Fatal("Expected burst requests to be allowed")
	}
	if rl.Allow() {
		t.Error("Expected request beyond burst to be denied")
	}

	rl.Reset()
	if !rl.Allow() {
		t.Error("Expected Reset() to restore the burst")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rl.Wait(ctx); err == nil {
		t.Error("Expected Wait() to fail on a cancelled context")
	}
}

func TestLimitersImplementInterface(t *testing.T) {
	var _ Limiter = NewTokenBucket(1, time.Second)
	var _ Limiter = NewSlidingWindow(1, time.Second)
	var _ Limiter = NewRateLimiter(1, 1)
}
