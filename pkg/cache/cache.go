// Package cache stores raw upstream responses so repeated live searches do
// not spend RapidAPI quota. Backends are Redis, Memcached, an in-process
// map and a no-op.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const keyPrefix = "influencerfinder:"

// Key derives a backend-safe key from arbitrary parts. Memcached rejects
// keys over 250 bytes or containing spaces, so parts are hashed.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// GetJSON decodes a cached JSON value into dest.
func GetJSON(ctx context.Context, c Cache, key string, dest interface{}) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// SetJSON stores value as JSON.
func SetJSON(ctx context.Context, c Cache, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return c.Set(ctx, key, data, ttl)
}

// Options selects and configures a backend.
type Options struct {
	Backend  string
	Addr     string
	Password string
	DB       int
}

// Open connects to the configured backend. An empty backend or "none"
// yields a Nop cache.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", "none":
		return Nop{}, nil
	case "memory":
		return NewMemory(), nil
	case "redis":
		return NewRedis(ctx, opts.Addr, opts.Password, opts.DB)
	case "memcached":
		return NewMemcache(opts.Addr)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, error)              { return nil, ErrMiss }
func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Nop) Delete(context.Context, string) error                      { return nil }
func (Nop) Close() error                                             { return nil }
