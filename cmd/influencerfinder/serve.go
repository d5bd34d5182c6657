package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"influencerfinder/internal/server"
	"influencerfinder/pkg/shortlist"
	"influencerfinder/pkg/ui"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API used by the web front end.

Endpoints:
  GET    /api/health
  POST   /api/search
  GET    /api/search/stream
  POST   /api/engagement
  POST   /api/export
  GET    /api/shortlists
  POST   /api/shortlists
  GET    /api/shortlists/{name}
  DELETE /api/shortlists/{name}

API documentation is served at /swagger/index.html and Prometheus
metrics at /metrics.`,
	Example: `  # Demo data on the default port
  influencerfinder serve

  # Live data on port 8080 with a Redis response cache
  influencerfinder serve --mode live --port 8080 --cache redis`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "P", 0, "port to listen on (default 3000)")
	serveCmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent profile enrichments")
	serveCmd.Flags().StringVar(&cacheBackend, "cache", "", "live response cache: none, memory, redis or memcached")
	serveCmd.Flags().StringVar(&shortlistDB, "db", "", "shortlist database path")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, c, err := a.service(ctx, a.cfg.Metrics.Enabled)
	if err != nil {
		return err
	}
	defer c.Close()

	// The API still serves searches when the database cannot be opened.
	var shortlists *shortlist.Store
	if store, err := a.openShortlists(); err != nil {
		a.log.WithError(err).Warn("shortlists disabled")
	} else {
		shortlists = store
		defer store.Close()
	}

	srv := server.New(server.Options{
		Config:     a.cfg,
		Service:    service,
		Shortlists: shortlists,
		Logger:     a.log,
	})

	ui.PrintInfo("Mode", service.Mode())
	ui.PrintInfo("Listening", fmt.Sprintf("http://localhost:%d/api", a.cfg.Server.Port))
	if err := srv.Run(ctx); err != nil {
		return err
	}
	ui.PrintSuccess("Server stopped")
	return nil
}
