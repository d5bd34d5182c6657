package server

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"influencerfinder/internal/metrics"
	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/ratelimit"
)

const requestIDKey = "request_id"

// RequestID reuses an incoming X-Request-ID or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	if id, ok := c.Get(requestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return "unknown"
}

// RequestLogger logs one line per request through log.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		logger.LogRequest(log, c.Request.Method, path, c.Writer.Status(), time.Since(start), map[string]interface{}{
			"request_id": requestID(c),
			"client_ip":  c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
			"body_size":  c.Writer.Size(),
		})
	}
}

// Recovery turns panics into a 500 JSON response. The panic is logged
// through log only; gin's own dump is discarded.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered interface{}) {
		log.ErrorWithFields("panic recovered", map[string]interface{}{
			"request_id": requestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      fmt.Sprintf("%v", recovered),
			"stack":      string(debug.Stack()),
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
	})
}

// RateLimit allows limiter.Limit() requests per window per client IP and
// reports the standard RateLimit-* headers.
func RateLimit(limiter *ratelimit.KeyedLimiter, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		allowed, remaining, resetAt := limiter.Take(ip)

		c.Header("RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("RateLimit-Remaining", strconv.Itoa(remaining))
		reset := int(time.Until(resetAt).Round(time.Second).Seconds())
		if reset < 0 {
			reset = 0
		}
		c.Header("RateLimit-Reset", strconv.Itoa(reset))

		if !allowed {
			logger.LogRateLimit(log, ip, limiter.Limit(), limiter.Window())
			metrics.IncRateLimited()
			c.Header("Retry-After", strconv.Itoa(reset))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: msgTooManyRequests})
			return
		}
		c.Next()
	}
}

// CORS builds the cross-origin middleware. "*" allows every origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	cfg.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition", "RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset"}

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
