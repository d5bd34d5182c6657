package main

import (
	"context"
	"fmt"

	"influencerfinder/internal/metrics"
	"influencerfinder/pkg/auth"
	"influencerfinder/pkg/cache"
	"influencerfinder/pkg/config"
	"influencerfinder/pkg/finder"
	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/session"
	"influencerfinder/pkg/shortlist"
)

// Flags shared by several commands. Zero values leave config untouched.
var (
	servePort    int
	workers      int
	cacheBackend string
	exportOutput string
	shortlistDB  string
)

// app is what every command needs once configuration is loaded.
type app struct {
	cfg      *config.Config
	log      logger.Logger
	sessions *session.Manager
}

func commandFlags() map[string]interface{} {
	return map[string]interface{}{
		"mode":       mode,
		"port":       servePort,
		"workers":    workers,
		"cache":      cacheBackend,
		"output":     exportOutput,
		"db":         shortlistDB,
		"log-level":  effectiveLogLevel(),
		"log-format": logFormat,
		"no-color":   noColor,
	}
}

// loadApp reads configuration, sets up logging and, in live mode, fills
// missing RapidAPI credentials from the credential store.
func loadApp() (*app, error) {
	cfg, err := config.Load(configFile, commandFlags())
	if err != nil {
		return nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.SetLogger(log)

	if cfg.IsLive() {
		resolveCredentials(cfg, log)
	}

	sessions, err := session.NewManager(cfg.Storage.DataDir, log)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: log, sessions: sessions}, nil
}

func resolveCredentials(cfg *config.Config, log logger.Logger) {
	if cfg.RapidAPI.Key != "" && cfg.RapidAPI.Host != "" {
		return
	}
	manager, err := auth.NewManager("")
	if err != nil {
		log.WithError(err).Debug("credential store unavailable")
		return
	}
	cfg.RapidAPI.Key, cfg.RapidAPI.Host = manager.Resolve(cfg.RapidAPI.Key, cfg.RapidAPI.Host)
}

// service builds the search service for the configured mode. The
// returned cache must be closed.
func (a *app) service(ctx context.Context, instrument bool) (*finder.Service, cache.Cache, error) {
	var opts []finder.ClientOption
	if instrument {
		opts = append(opts, metrics.InstrumentClient)
	}
	return finder.FromConfig(ctx, a.cfg, a.log, opts...)
}

func (a *app) openShortlists() (*shortlist.Store, error) {
	store, err := shortlist.Open(a.cfg.ShortlistPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open shortlist database: %w", err)
	}
	return store, nil
}
