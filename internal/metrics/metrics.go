// Package metrics defines the Prometheus collectors of the influencer
// finder and the gin middleware that feeds the HTTP ones.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"influencerfinder/pkg/finder"
	"influencerfinder/pkg/rapidapi"
)

const namespace = "influencerfinder"

var (
	SearchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Searches by mode and outcome",
	}, []string{"mode", "outcome"})

	SearchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Search duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode"})

	ProfilesReturned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_profiles_returned",
		Help:      "Profiles returned per successful search",
		Buckets:   []float64{0, 1, 2, 5, 10, 15, 20, 50},
	})

	ExportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Exports by format",
	}, []string{"format"})

	UpstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "RapidAPI requests by status class",
	}, []string{"status"})

	UpstreamDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "RapidAPI request duration in seconds",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	UpstreamRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_retries_total",
		Help:      "RapidAPI retry attempts",
	})

	CacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Response cache lookups by result",
	}, []string{"result"})

	RateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "API requests rejected by the per-client rate limit",
	})
)

func init() {
	prometheus.MustRegister(
		SearchesTotal, SearchDuration, ProfilesReturned, ExportsTotal,
		UpstreamRequests, UpstreamDuration, UpstreamRetries, CacheLookups,
		RateLimited,
		httpRequestDuration, httpRequestsTotal,
	)
}

// Handler serves the default registry.
func Handler() http.Handler { return promhttp.Handler() }

// ObserveSearch records one search. outcome is "ok" or the error type.
func ObserveSearch(mode, outcome string, profiles int, d time.Duration) {
	SearchesTotal.WithLabelValues(mode, outcome).Inc()
	SearchDuration.WithLabelValues(mode).Observe(d.Seconds())
	if outcome == "ok" {
		ProfilesReturned.Observe(float64(profiles))
	}
}

// IncExport counts an export in the given format.
func IncExport(format string) { ExportsTotal.WithLabelValues(format).Inc() }

// IncRateLimited counts a rejected API request.
func IncRateLimited() { RateLimited.Inc() }

// InstrumentClient attaches upstream collectors to a RapidAPI client.
func InstrumentClient(o *rapidapi.Options) {
	o.OnRequest = func(status int, d time.Duration) {
		UpstreamRequests.WithLabelValues(statusClass(status)).Inc()
		UpstreamDuration.Observe(d.Seconds())
	}
	o.OnRetry = func(int, error, time.Duration) { UpstreamRetries.Inc() }
	o.OnCache = func(hit bool) {
		if hit {
			CacheLookups.WithLabelValues("hit").Inc()
			return
		}
		CacheLookups.WithLabelValues("miss").Inc()
	}
}

var _ finder.ClientOption = InstrumentClient

func statusClass(status int) string {
	switch {
	case status == 0:
		return "error"
	case status < 200:
		return "1xx"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
