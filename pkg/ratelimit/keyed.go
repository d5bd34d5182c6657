package ratelimit

import (
	"sync"
	"time"
)

// KeyedLimiter keeps an independent sliding window per key, typically a
// client IP address.
type KeyedLimiter struct {
	maxRequests int
	window      time.Duration
	now         func() time.Time

	mu      sync.Mutex
	windows map[string]*SlidingWindow
}

// NewKeyedLimiter allows maxRequests per window for every key
func NewKeyedLimiter(maxRequests int, window time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		windows:     make(map[string]*SlidingWindow),
	}
}

// Limit returns the request limit per window.
func (k *KeyedLimiter) Limit() int { return k.maxRequests }

// Window returns the window length.
func (k *KeyedLimiter) Window() time.Duration { return k.window }

// Take records a request for key. See SlidingWindow.Take.
func (k *KeyedLimiter) Take(key string) (allowed bool, remaining int, resetAt time.Time) {
	k.mu.Lock()
	sw, ok := k.windows[key]
	if !ok {
		sw = NewSlidingWindow(k.maxRequests, k.window)
		sw.now = k.now
		k.windows[key] = sw
	}
	k.mu.Unlock()

	return sw.Take()
}

// Allow reports whether a request for key may proceed.
func (k *KeyedLimiter) Allow(key string) bool {
	ok, _, _ := k.Take(key)
	return ok
}

// Prune drops keys with no requests left in their window and returns how
// many were removed.
func (k *KeyedLimiter) Prune() int {
	now := k.now()

	k.mu.Lock()
	defer k.mu.Unlock()

	removed := 0
	for key, sw := range k.windows {
		if sw.idle(now) {
			delete(k.windows, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.windows)
}

// Reset forgets every key.
func (k *KeyedLimiter) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.windows = make(map[string]*SlidingWindow)
}
