package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "influencerfinder/pkg/errors"
)

// Fixed response texts shared with the web client.
const (
	msgIndustryRequired = "Industry/niche is required"
	msgUsernameRequired = "Username is required"
	msgUserNotFound     = "User not found"
	msgSearchFailed     = "An error occurred while searching for influencers"
	msgEngagementFailed = "Failed to calculate engagement rate"
	msgLiveUnavailable  = "Instagram API search is not available"
	msgNotFound         = "Endpoint not found"
	msgInternal         = "Internal server error"
	msgTooManyRequests  = "Too many requests from this IP, please try again later."

	suggestionDemoMode = "Most free Instagram APIs don't support search functionality. " +
		"Please switch to demo mode by changing MODE=demo in your .env file, or upgrade to a paid API service."
)

// writeError maps err to a status code and JSON body. fallback is the
// message used for errors without a more specific response.
func (s *Server) writeError(c *gin.Context, err error, fallback string) {
	status := errs.HTTPStatus(err)
	body := ErrorResponse{Error: errs.MessageOf(err)}

	switch {
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful can be written.
		c.Abort()
		return
	case errs.IsInvalidArgument(err):
		body.Field = errs.FieldOf(err)
	case errs.IsNotFound(err):
	case errs.IsUnavailable(err):
		body = ErrorResponse{
			Error:      msgLiveUnavailable,
			Details:    unwrappedMessage(err),
			Suggestion: suggestionDemoMode,
		}
	case errs.IsType(err, errs.ErrorTypeConfig):
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
		body = ErrorResponse{Error: fallback, Details: err.Error()}
	default:
		body = ErrorResponse{Error: fallback, Details: errs.MessageOf(err)}
	}

	s.logger.WithError(err).WithFields(map[string]interface{}{
		"request_id": requestID(c),
		"status":     status,
	}).Warn("request failed")

	c.AbortWithStatusJSON(status, body)
}

// unwrappedMessage describes an unavailable error by its cause when there
// is one, since the wrapper text is generic.
func unwrappedMessage(err error) string {
	var e *errs.Error
	if errors.As(err, &e) && e.Err != nil {
		return errs.MessageOf(e.Err)
	}
	return errs.MessageOf(err)
}
