package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencerfinder/pkg/rapidapi"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/shortlists/:name", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/fail", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	for _, path := range []string{"/api/shortlists/a", "/api/shortlists/b", "/api/fail", "/nope"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/shortlists/:name", "200")), 2.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/fail", "503")), 1.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unknown", "404")), 1.0)
	assert.NotZero(t, testutil.CollectAndCount(httpRequestDuration))
}

func TestInstrumentClient(t *testing.T) {
	var opts rapidapi.Options
	InstrumentClient(&opts)
	require.NotNil(t, opts.OnRequest)
	require.NotNil(t, opts.OnRetry)
	require.NotNil(t, opts.OnCache)

	before2xx := testutil.ToFloat64(UpstreamRequests.WithLabelValues("2xx"))
	beforeErr := testutil.ToFloat64(UpstreamRequests.WithLabelValues("error"))
	beforeRetries := testutil.ToFloat64(UpstreamRetries)
	beforeHits := testutil.ToFloat64(CacheLookups.WithLabelValues("hit"))

	opts.OnRequest(200, 40*time.Millisecond)
	opts.OnRequest(0, time.Second)
	opts.OnRetry(1, errors.New("boom"), time.Millisecond)
	opts.OnCache(true)
	opts.OnCache(false)

	assert.Equal(t, before2xx+1, testutil.ToFloat64(UpstreamRequests.WithLabelValues("2xx")))
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(UpstreamRequests.WithLabelValues("error")))
	assert.Equal(t, beforeRetries+1, testutil.ToFloat64(UpstreamRetries))
	assert.Equal(t, beforeHits+1, testutil.ToFloat64(CacheLookups.WithLabelValues("hit")))
}

func TestStatusClass(t *testing.T) {
	tests := map[int]string{0: "error", 101: "1xx", 204: "2xx", 302: "3xx", 429: "4xx", 503: "5xx"}
	for status, want := range tests {
		assert.Equal(t, want, statusClass(status), "status %d", status)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	ObserveSearch("demo", "ok", 6, 15*time.Millisecond)
	ObserveSearch("live", "unavailable", 0, time.Second)
	IncExport("csv")
	IncRateLimited()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	for _, m := range []string{
		"influencerfinder_searches_total",
		"influencerfinder_search_duration_seconds",
		"influencerfinder_search_profiles_returned",
		"influencerfinder_exports_total",
		"influencerfinder_rate_limited_total",
	} {
		assert.True(t, strings.Contains(body, m), "expected metric %s", m)
	}
}
