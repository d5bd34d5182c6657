package logger

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LogRequest logs an HTTP request with a level chosen by status code
func LogRequest(l Logger, method, path string, statusCode int, duration time.Duration, fields map[string]interface{}) {
	merged := map[string]interface{}{
		"method":      method,
		"path":        path,
		"status_code": statusCode,
		"duration":    duration,
	}
	for k, v := range fields {
		merged[k] = v
	}

	switch {
	case statusCode >= 500:
		l.ErrorWithFields("Request failed", merged)
	case statusCode >= 400:
		l.WarnWithFields("Request rejected", merged)
	default:
		l.InfoWithFields("Request processed", merged)
	}
}

// LogSearch logs the outcome of an influencer search
func LogSearch(l Logger, mode, industry string, matched int, duration time.Duration) {
	l.InfoWithFields("Search completed", map[string]interface{}{
		"mode":     mode,
		"industry": industry,
		"matched":  matched,
		"duration": duration,
	})
}

// LogRateLimit logs rate limiting events
func LogRateLimit(l Logger, key string, limit int, window time.Duration) {
	l.WithFields(map[string]interface{}{
		"key":    key,
		"limit":  limit,
		"window": window,
		"action": "rate_limited",
	}).Warn("Rate limit reached")
}

// LogComponentStart logs when a component starts
func LogComponentStart(component string, config map[string]interface{}) {
	logger := GetLogger().WithField("component", component)

	if len(config) > 0 {
		logger = logger.WithFields(config)
	}

	logger.Info("Component started")
}

// LogComponentStop logs when a component stops
func LogComponentStop(component string, reason string) {
	GetLogger().WithFields(map[string]interface{}{
		"component": component,
		"reason":    reason,
	}).Info("Component stopped")
}

// OrDefault returns l, or the global logger when l is nil.
func OrDefault(l Logger) Logger {
	if l == nil {
		return GetLogger()
	}
	return l
}

// NewNopLogger creates a no-operation logger for testing
func NewNopLogger() Logger {
	return &nopLogger{}
}

// nopLogger is a logger that does nothing
type nopLogger struct{}

var nopZerolog = zerolog.Nop()

func (n *nopLogger) Debug(msg string)                                          {}
func (n *nopLogger) Info(msg string)                                           {}
func (n *nopLogger) Warn(msg string)                                           {}
func (n *nopLogger) Error(msg string)                                          {}
func (n *nopLogger) Fatal(msg string)                                          {}
func (n *nopLogger) WithField(key string, value interface{}) Logger            { return n }
func (n *nopLogger) WithFields(fields map[string]interface{}) Logger           { return n }
func (n *nopLogger) WithError(err error) Logger                                { return n }
func (n *nopLogger) WithContext(ctx context.Context) Logger                    { return n }
func (n *nopLogger) DebugWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) InfoWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) WarnWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) ErrorWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) FatalWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) GetZerolog() *zerolog.Logger                               { return &nopZerolog }
