package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencerfinder/pkg/config"
	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/finder"
	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/shortlist"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type testServer struct {
	*Server
	log *logger.TestLogger
}

func newTestServer(t *testing.T, svc *finder.Service, store *shortlist.Store, mutate ...func(*config.Config)) *testServer {
	t.Helper()
	cfg := config.DefaultConfig()
	for _, m := range mutate {
		m(cfg)
	}
	if svc == nil {
		svc = finder.New(finder.NewDemoSource(), finder.Options{Workers: 2, Logger: logger.NewNopLogger()})
	}

	log := logger.NewTestLogger()
	s := New(Options{Config: cfg, Service: svc, Shortlists: store, Logger: log})
	s.now = func() time.Time { return fixedNow }
	return &testServer{Server: s, log: log}
}

func (ts *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), w.Body.String())
}

// failingClient rejects every live call.
type failingClient struct {
	err error
}

func (f failingClient) Search(context.Context, string, int) ([]influencer.Profile, error) {
	return nil, f.err
}

func (f failingClient) GetUserProfile(context.Context, string) (influencer.Profile, error) {
	return influencer.Profile{}, f.err
}

func (f failingClient) GetRecentPosts(context.Context, string) ([]influencer.Post, error) {
	return nil, f.err
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	w := ts.do(http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	decode(t, w, &resp)
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, config.ModeDemo, resp.Mode)
	assert.Equal(t, "2026-03-14T09:30:00Z", resp.Timestamp)
	assert.Equal(t, "Running in DEMO mode with mock data", resp.Message)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHealthLiveMode(t *testing.T) {
	svc := finder.New(finder.NewLiveSource(failingClient{}, 20, 1, logger.NewNopLogger()), finder.Options{})
	ts := newTestServer(t, svc, nil)

	var resp HealthResponse
	decode(t, ts.do(http.MethodGet, "/api/health", nil), &resp)
	assert.Equal(t, config.ModeLive, resp.Mode)
	assert.Equal(t, "Running in LIVE mode with RapidAPI", resp.Message)
}

func TestSearch(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	w := ts.do(http.MethodPost, "/api/search", map[string]interface{}{"industry": "vegan"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp SearchResponse
	decode(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, config.ModeDemo, resp.Mode)
	assert.Equal(t, "vegan", resp.Filters.Industry)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "rachel_vegan_life", resp.Data[0].Username)
	assert.Positive(t, resp.Data[0].EngagementRate)
}

func TestSearchAcceptsNumericBounds(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	w := ts.do(http.MethodPost, "/api/search", `{"industry":"vegan","min_followers":3000,"max_followers":null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp SearchResponse
	decode(t, w, &resp)
	assert.Equal(t, 0, resp.Count)
	assert.Equal(t, "3000", resp.Filters.MinFollowers)
}

func TestSearchValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      interface{}
		wantError string
		wantField string
	}{
		{"missing industry", map[string]string{"gender": "female"}, msgIndustryRequired, "industry"},
		{"blank industry", map[string]string{"industry": "   "}, msgIndustryRequired, "industry"},
		{"bad bound", map[string]string{"industry": "fitness", "min_followers": "abc"}, "", influencer.FieldMinFollowers},
		{"malformed body", `{"industry":`, "Invalid request body", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil, nil)
			w := ts.do(http.MethodPost, "/api/search", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			var resp ErrorResponse
			decode(t, w, &resp)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp.Error)
			}
			assert.Equal(t, tt.wantField, resp.Field)
		})
	}
}

func TestSearchLiveUnavailable(t *testing.T) {
	svc := finder.New(finder.NewLiveSource(failingClient{err: errs.FromStatus(401, "invalid key")}, 20, 1, logger.NewNopLogger()), finder.Options{})
	ts := newTestServer(t, svc, nil)

	w := ts.do(http.MethodPost, "/api/search", map[string]string{"industry": "fitness"})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, msgLiveUnavailable, resp.Error)
	assert.Contains(t, resp.Details, "invalid key")
	assert.Equal(t, suggestionDemoMode, resp.Suggestion)
	assert.True(t, ts.log.HasMessage("request failed"))
}

func TestEngagement(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	t.Run("found", func(t *testing.T) {
		w := ts.do(http.MethodPost, "/api/engagement", map[string]string{"username": "fitness_emma_fit"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp EngagementResponse
		decode(t, w, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "fitness_emma_fit", resp.Data.Username)
		assert.Positive(t, resp.Data.EngagementRate)
		assert.Positive(t, resp.Data.AvgLikes)
	})

	t.Run("missing username", func(t *testing.T) {
		w := ts.do(http.MethodPost, "/api/engagement", map[string]string{})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		decode(t, w, &resp)
		assert.Equal(t, msgUsernameRequired, resp.Error)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := ts.do(http.MethodPost, "/api/engagement", map[string]string{"username": "nobody_here"})
		require.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		decode(t, w, &resp)
		assert.Equal(t, msgUserNotFound, resp.Error)
	})
}

func TestExportCSV(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	w := ts.do(http.MethodPost, "/api/export", map[string]interface{}{"industry": "vegan"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="influencers_shortlist_2026-03-14.csv"`, w.Header().Get("Content-Disposition"))

	lines := strings.Split(w.Body.String(), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], `"Username","Full Name"`))
	assert.True(t, strings.HasPrefix(lines[1], `"rachel_vegan_life"`))
}

func TestExportSelection(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	w := ts.do(http.MethodPost, "/api/export", map[string]interface{}{
		"gender":    "female",
		"industry":  "fitness",
		"usernames": []string{"FITNESS_EMMA_FIT"},
		"format":    "json",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".json")

	var profiles []influencer.EnrichedProfile
	decode(t, w, &profiles)
	require.Len(t, profiles, 1)
	assert.Equal(t, "fitness_emma_fit", profiles[0].Username)
}

func TestExportErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      map[string]interface{}
		wantField string
	}{
		{"unknown format", map[string]interface{}{"industry": "vegan", "format": "xml"}, "format"},
		{"nothing selected", map[string]interface{}{"industry": "vegan", "usernames": []string{"someone_else"}}, "usernames"},
		{"missing industry", map[string]interface{}{}, "industry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil, nil)
			w := ts.do(http.MethodPost, "/api/export", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			var resp ErrorResponse
			decode(t, w, &resp)
			assert.Equal(t, tt.wantField, resp.Field)
		})
	}
}

func TestSearchStream(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	w := ts.do(http.MethodGet, "/api/search/stream?industry=vegan&gender=female", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/event-stream"), w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "event:log")
	assert.Contains(t, body, "event:profile")
	assert.Contains(t, body, "event:complete")
	assert.NotContains(t, body, "event:error")
	assert.Contains(t, body, "rachel_vegan_life")
	assert.Less(t, strings.Index(body, "event:profile"), strings.Index(body, "event:complete"))
}

func TestSearchStreamErrors(t *testing.T) {
	t.Run("missing industry", func(t *testing.T) {
		ts := newTestServer(t, nil, nil)
		w := ts.do(http.MethodGet, "/api/search/stream", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid bound", func(t *testing.T) {
		ts := newTestServer(t, nil, nil)
		w := ts.do(http.MethodGet, "/api/search/stream?industry=vegan&max_followers=lots", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "event:error")
		assert.Contains(t, w.Body.String(), influencer.FieldMaxFollowers)
	})
}

func TestShortlists(t *testing.T) {
	store, err := shortlist.Open(filepath.Join(t.TempDir(), "shortlists.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ts := newTestServer(t, nil, store)

	w := ts.do(http.MethodPost, "/api/shortlists", map[string]interface{}{
		"name":    "spring",
		"filters": map[string]string{"industry": "vegan"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Success bool                `json:"success"`
		Data    shortlist.Shortlist `json:"data"`
	}
	decode(t, w, &created)
	assert.Equal(t, "spring", created.Data.Name)
	assert.Equal(t, config.ModeDemo, created.Data.Mode)
	assert.Equal(t, "vegan", created.Data.Criteria.Industry)
	require.Len(t, created.Data.Profiles, 1)

	var list struct {
		Count int                 `json:"count"`
		Data  []shortlist.Summary `json:"data"`
	}
	decode(t, ts.do(http.MethodGet, "/api/shortlists", nil), &list)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, 1, list.Data[0].Count)

	w = ts.do(http.MethodGet, "/api/shortlists/spring", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodDelete, "/api/shortlists/spring", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(http.MethodGet, "/api/shortlists/spring", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(http.MethodDelete, "/api/shortlists/spring", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShortlistValidation(t *testing.T) {
	store, err := shortlist.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ts := newTestServer(t, nil, store)

	w := ts.do(http.MethodPost, "/api/shortlists", map[string]interface{}{
		"name":    "a/b",
		"filters": map[string]string{"industry": "vegan"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "name", resp.Field)
}

func TestShortlistsWithoutStore(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	w := ts.do(http.MethodGet, "/api/shortlists", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRateLimit(t *testing.T) {
	ts := newTestServer(t, nil, nil, func(c *config.Config) { c.RateLimit.Max = 2 })

	for i := 0; i < 2; i++ {
		w := ts.do(http.MethodGet, "/api/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("RateLimit-Limit"))
	}

	w := ts.do(http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, msgTooManyRequests, resp.Error)
}

func TestNoRoute(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	w := ts.do(http.MethodGet, "/api/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, msgNotFound, resp.Error)
}

func TestRecovery(t *testing.T) {
	var ginOut bytes.Buffer
	prev := gin.DefaultErrorWriter
	gin.DefaultErrorWriter = &ginOut
	t.Cleanup(func() { gin.DefaultErrorWriter = prev })

	ts := newTestServer(t, nil, nil)
	ts.engine.GET("/boom", func(*gin.Context) { panic("boom") })

	w := ts.do(http.MethodGet, "/boom", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, msgInternal, resp.Error)
	assert.True(t, ts.log.HasMessage("panic recovered"))
	assert.Empty(t, ginOut.String())
}

func TestRequestIDIsEchoed(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	ts.do(http.MethodPost, "/api/search", map[string]string{"industry": "vegan"})

	w := ts.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "influencerfinder_searches_total")
}
