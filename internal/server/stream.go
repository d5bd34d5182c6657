package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/finder"
)

// Stream event names.
const (
	eventLog      = "log"
	eventProfile  = "profile"
	eventError    = "error"
	eventComplete = "complete"
)

// streamEvent is the data payload of every server-sent event.
type streamEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type logEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Done    int    `json:"done,omitempty"`
	Total   int    `json:"total,omitempty"`
}

// searchStream godoc
// @Summary      Search influencers with progress
// @Description  Same filters as POST /search, sent as query parameters. Emits log and profile events while the search runs, then one complete or error event.
// @Tags         influencers
// @Produce      text/event-stream
// @Param        industry       query  string  true   "Niche keyword"
// @Param        gender         query  string  false  "male or female"
// @Param        country        query  string  false  "Country substring"
// @Param        min_followers  query  string  false  "Minimum followers"
// @Param        max_followers  query  string  false  "Maximum followers"
// @Param        sort_by        query  string  false  "Sort field"
// @Param        sort_order     query  string  false  "asc or desc"
// @Success      200
// @Failure      400  {object}  ErrorResponse
// @Router       /search/stream [get]
func (s *Server) searchStream(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query", Details: err.Error()})
		return
	}
	if !req.hasIndustry() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgIndustryRequired, Field: "industry"})
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	send := func(event string, data interface{}) {
		c.SSEvent(event, streamEvent{Type: event, Data: data})
		c.Writer.Flush()
	}

	resp, err := s.runSearch(c, req.toFinder(), func(p finder.Progress) {
		if p.Stage == finder.StageProfile && p.Profile != nil {
			send(eventProfile, p.Profile)
		}
		send(eventLog, logEvent{Stage: p.Stage, Message: p.Message, Done: p.Done, Total: p.Total})
	})
	if err != nil {
		if c.Request.Context().Err() != nil {
			return
		}
		s.logger.WithError(err).WithField("request_id", requestID(c)).Warn("stream search failed")
		body := ErrorResponse{Error: errs.MessageOf(err), Field: errs.FieldOf(err)}
		if errs.IsUnavailable(err) {
			body = ErrorResponse{Error: msgLiveUnavailable, Details: unwrappedMessage(err), Suggestion: suggestionDemoMode}
		}
		send(eventError, body)
		return
	}

	send(eventComplete, SearchResponse{
		Success: true,
		Count:   len(resp.Profiles),
		Mode:    resp.Mode,
		Filters: resp.Request,
		Data:    resp.Profiles,
	})
}
