// Package server exposes the influencer finder over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	"influencerfinder/internal/metrics"
	_ "influencerfinder/internal/server/docs"
	"influencerfinder/pkg/config"
	"influencerfinder/pkg/finder"
	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/ratelimit"
	"influencerfinder/pkg/shortlist"
)

// pruneInterval is how often idle per-client rate limit windows are dropped.
const pruneInterval = time.Minute

// Options wires a Server. Shortlists may be nil, which disables the
// shortlist routes.
type Options struct {
	Config     *config.Config
	Service    *finder.Service
	Shortlists *shortlist.Store
	Logger     logger.Logger
}

// Server is the HTTP API.
type Server struct {
	cfg        *config.Config
	service    *finder.Service
	shortlists *shortlist.Store
	limiter    *ratelimit.KeyedLimiter
	logger     logger.Logger
	engine     *gin.Engine
	now        func() time.Time
}

// @title        Influencer Finder API
// @version      1.0
// @description  Filters Instagram influencer profiles and computes engagement rates.
// @BasePath     /api

// New builds the router.
func New(opts Options) *Server {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := &Server{
		cfg:        cfg,
		service:    opts.Service,
		shortlists: opts.Shortlists,
		limiter:    ratelimit.NewKeyedLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window()),
		logger:     logger.OrDefault(opts.Logger).WithField("component", "server"),
		now:        time.Now,
	}
	s.engine = s.routes()
	return s
}

// Handler returns the router for use in tests or another server.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.Use(RequestLogger(s.logger))
	r.Use(Recovery(s.logger))
	r.Use(CORS(s.cfg.Server.Origins))
	if s.cfg.Metrics.Enabled {
		r.Use(metrics.Middleware())
		if s.cfg.Metrics.Addr == "" {
			r.GET("/metrics", gin.WrapH(metrics.Handler()))
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(RateLimit(s.limiter, s.logger))
	{
		api.GET("/health", s.health)
		api.POST("/search", s.search)
		api.GET("/search/stream", s.searchStream)
		api.POST("/engagement", s.engagement)
		api.POST("/export", s.export)

		lists := api.Group("/shortlists")
		lists.GET("", s.listShortlists)
		lists.POST("", s.saveShortlist)
		lists.GET("/:name", s.getShortlist)
		lists.DELETE("/:name", s.deleteShortlist)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msgNotFound})
	})
	return r
}

// Run serves the API, and the metrics endpoint when it has its own
// address, until ctx is cancelled. It then shuts both down gracefully.
func (s *Server) Run(ctx context.Context) error {
	servers := []*http.Server{{
		Addr:         fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}}
	if s.cfg.Metrics.Enabled && s.cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		servers = append(servers, &http.Server{
			Addr:              s.cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		})
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			s.logger.InfoWithFields("listening", map[string]interface{}{"addr": srv.Addr})
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server on %s failed: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		ticker := time.NewTicker(pruneInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if n := s.limiter.Prune(); n > 0 {
					s.logger.DebugWithFields("pruned rate limit windows", map[string]interface{}{"removed": n})
				}
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()

		var shutdownErr error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				shutdownErr = errors.Join(shutdownErr, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return shutdownErr
	})

	return g.Wait()
}
