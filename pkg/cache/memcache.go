package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// Memcache stores entries in one or more memcached servers.
type Memcache struct {
	client *memcache.Client
}

// NewMemcache connects to a comma separated list of servers.
func NewMemcache(addrs string) (*Memcache, error) {
	servers := strings.Split(addrs, ",")
	for i := range servers {
		servers[i] = strings.TrimSpace(servers[i])
	}

	client := memcache.New(servers...)
	if err := client.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to memcached at %s: %w", addrs, err)
	}
	return &Memcache{client: client}, nil
}

func (m *Memcache) Get(_ context.Context, key string) ([]byte, error) {
	item, err := m.client.Get(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

func (m *Memcache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	return m.client.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(ttl / time.Second),
	})
}

func (m *Memcache) Delete(_ context.Context, key string) error {
	err := m.client.Delete(key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil
	}
	return err
}

func (m *Memcache) Close() error {
	return nil
}
