package rapidapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"influencerfinder/pkg/cache"
	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/ratelimit"
	"influencerfinder/pkg/retry"
)

const (
	// DefaultTimeout bounds a single upstream request
	DefaultTimeout = 10 * time.Second

	// DefaultCacheTTL is how long cached responses stay valid
	DefaultCacheTTL = 10 * time.Minute

	maxBodySize = 10 << 20
)

// ErrCredentialsMissing is returned by NewClient without a key or host.
var ErrCredentialsMissing = errs.New(errs.ErrorTypeConfig,
	"RapidAPI credentials not configured. Please set RAPIDAPI_KEY and RAPIDAPI_HOST in .env file.")

// Options configures a Client. Key and Host are required.
type Options struct {
	Key     string
	Host    string
	BaseURL string // defaults to https://{Host}
	Timeout time.Duration

	// MaxRetries is the number of retries after the first attempt
	MaxRetries int
	// Backoff replaces the per-error-type backoff when set
	Backoff retry.BackoffStrategy

	Limiter  ratelimit.Limiter
	Cache    cache.Cache
	CacheTTL time.Duration

	// PostsPerProfile is the post count requested by GetRecentPosts
	PostsPerProfile int

	HTTPClient *http.Client
	Normalizer *Normalizer
	Logger     logger.Logger

	// Hooks observe upstream traffic. Any of them may be nil.
	OnRequest func(status int, duration time.Duration)
	OnRetry   func(attempt int, err error, delay time.Duration)
	OnCache   func(hit bool)
}

// Client talks to an Instagram data provider on RapidAPI
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	baseURL    string
	host       string
	limiter    ratelimit.Limiter
	cache      cache.Cache
	cacheTTL   time.Duration
	retry      *retry.Config
	postsCount int
	normalizer *Normalizer
	logger     logger.Logger
	onRequest  func(status int, duration time.Duration)
	onCache    func(hit bool)
}

// NewClient creates a new RapidAPI client
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.Key) == "" || strings.TrimSpace(opts.Host) == "" {
		return nil, ErrCredentialsMissing
	}

	log := logger.OrDefault(opts.Logger)

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = BaseURLForHost(opts.Host)
	}
	c := opts.Cache
	if c == nil {
		c = cache.Nop{}
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	normalizer := opts.Normalizer
	if normalizer == nil {
		normalizer = NewNormalizer()
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}

	if opts.PostsPerProfile <= 0 {
		opts.PostsPerProfile = DefaultPostsCount
	}

	retryCfg := &retry.Config{
		MaxAttempts: opts.MaxRetries + 1,
		RetryIf:     retry.DefaultRetryIf,
		OnRetry:     opts.OnRetry,
		Logger:      log,
	}
	if opts.Backoff != nil {
		retryCfg.Backoff = opts.Backoff
	} else {
		// Request paths sit behind an HTTP handler, so the long
		// rate-limit delays are scaled down to fit the request timeout.
		retryCfg.BackoffFor = retry.NewErrorTypeBackoff().Scaled(0.05).For
	}

	return &Client{
		httpClient: httpClient,
		headers: map[string]string{
			HeaderKey:  opts.Key,
			HeaderHost: opts.Host,
			"Accept":   "application/json",
		},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		host:       opts.Host,
		limiter:    opts.Limiter,
		cache:      c,
		cacheTTL:   opts.CacheTTL,
		retry:      retryCfg,
		postsCount: opts.PostsPerProfile,
		normalizer: normalizer,
		logger:     log,
		onRequest:  opts.OnRequest,
		onCache:    opts.OnCache,
	}, nil
}

// Host returns the configured RapidAPI host
func (c *Client) Host() string {
	return c.host
}

// getJSON fetches path and decodes the body into a generic JSON value.
// Successful bodies are cached by URL.
func (c *Client) getJSON(ctx context.Context, path string) (interface{}, error) {
	url := c.baseURL + path
	key := cache.Key(c.host, url)

	if cached, err := c.cache.Get(ctx, key); err == nil {
		var v interface{}
		if json.Unmarshal(cached, &v) == nil {
			c.logger.DebugWithFields("cache hit", map[string]interface{}{
				"url": url,
			})
			c.observeCache(true)
			return v, nil
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		c.logger.WarnWithFields("cache lookup failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
	}

	c.observeCache(false)

	body, err := retry.DoWithResult(ctx, func(ctx context.Context) ([]byte, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		return c.fetch(ctx, url)
	}, c.retry)
	if err != nil {
		return nil, err
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		// Create a preview of the body for debugging
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}

		c.logger.ErrorWithFields("failed to parse JSON response", map[string]interface{}{
			"url":          url,
			"error":        err.Error(),
			"body_preview": bodyPreview,
		})
		return nil, errs.Wrap(errs.ErrorTypeParsing, err, "failed to parse JSON")
	}

	if err := c.cache.Set(ctx, key, body, c.cacheTTL); err != nil {
		c.logger.WarnWithFields("failed to cache response", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
	}

	return v, nil
}

func (c *Client) observeCache(hit bool) {
	if c.onCache != nil {
		c.onCache(hit)
	}
}

// fetch performs one GET request and returns the body of a 2xx response
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(errs.ErrorTypeUnknown, err, "failed to create request")
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    url,
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if c.onRequest != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		c.onRequest(status, duration)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.ErrorWithFields("HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      url,
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, errs.Wrap(errs.ErrorTypeNetwork, err, "network error")
	}
	defer resp.Body.Close()

	c.logger.DebugWithFields("HTTP request completed", map[string]interface{}{
		"method":   req.Method,
		"url":      url,
		"status":   resp.StatusCode,
		"duration": duration,
	})

	if err := c.checkResponseStatus(resp, url); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &errs.Error{
			Type:    errs.ErrorTypeNetwork,
			Message: "failed to read response body",
			Code:    resp.StatusCode,
			Err:     err,
		}
	}
	return body, nil
}

// checkResponseStatus maps non-2xx responses to typed errors
func (c *Client) checkResponseStatus(resp *http.Response, url string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	fields := map[string]interface{}{
		"status": resp.StatusCode,
		"url":    url,
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.logger.WarnWithFields("authentication error", fields)
		return errs.FromStatus(resp.StatusCode, "RapidAPI rejected the key or subscription")
	case resp.StatusCode == http.StatusNotFound:
		c.logger.DebugWithFields("resource not found", fields)
		return errs.FromStatus(resp.StatusCode, "resource not found")
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.WarnWithFields("rate limit exceeded", fields)
		return errs.FromStatus(resp.StatusCode, "rate limit exceeded")
	case resp.StatusCode >= 500:
		c.logger.ErrorWithFields("server error", fields)
		return errs.FromStatus(resp.StatusCode, "server error")
	default:
		c.logger.ErrorWithFields("unexpected API error", fields)
		return errs.FromStatus(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}
}
