package finder

import (
	"context"

	"influencerfinder/pkg/cache"
	"influencerfinder/pkg/config"
	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/rapidapi"
	"influencerfinder/pkg/ratelimit"
)

// ClientOption adjusts the RapidAPI client options before the client is
// built, typically to attach observation hooks.
type ClientOption func(*rapidapi.Options)

// FromConfig builds a Service for cfg.Mode. In live mode without
// credentials the Service still starts; every search then fails with the
// credentials error. The returned cache must be closed by the caller.
func FromConfig(ctx context.Context, cfg *config.Config, log logger.Logger, clientOpts ...ClientOption) (*Service, cache.Cache, error) {
	log = logger.OrDefault(log)
	workers := cfg.Enrichment.Workers

	if !cfg.IsLive() {
		return New(NewDemoSource(), Options{Workers: workers, Logger: log}), cache.Nop{}, nil
	}

	c, err := cache.Open(ctx, cache.Options{
		Backend:  cfg.Cache.Backend,
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	if err != nil {
		return nil, nil, err
	}

	limiter := ratelimit.NewRateLimiter(cfg.RapidAPI.RequestsPerSecond, cfg.RapidAPI.Burst)
	opts := rapidapi.Options{
		Key:             cfg.RapidAPI.Key,
		Host:            cfg.RapidAPI.Host,
		Timeout:         cfg.RapidAPI.Timeout,
		MaxRetries:      cfg.RapidAPI.MaxRetries,
		PostsPerProfile: cfg.RapidAPI.PostsPerProfile,
		Limiter:         limiter,
		Cache:           c,
		CacheTTL:        cfg.Cache.TTL,
		Logger:          log,
	}
	for _, o := range clientOpts {
		o(&opts)
	}
	client, err := rapidapi.NewClient(opts)
	if err != nil {
		log.WarnWithFields("live mode without usable RapidAPI credentials", map[string]interface{}{
			"error": err.Error(),
		})
		src := unconfiguredSource{mode: config.ModeLive, err: err}
		return New(src, Options{Workers: workers, Logger: log}), c, nil
	}

	src := NewLiveSource(client, cfg.RapidAPI.MaxProfiles, cfg.RapidAPI.MaxHashtags, log)
	return New(src, Options{Workers: workers, Logger: log}), c, nil
}
