package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"influencerfinder/pkg/finder"
	"influencerfinder/pkg/influencer"
)

// FlexString accepts a JSON string, number or null. Form-driven clients
// send follower bounds either way.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a string or number, got %s", data)
	}
	*f = FlexString(n.String())
	return nil
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Gender       string     `json:"gender" form:"gender" example:"female"`
	Country      string     `json:"country" form:"country" example:"United States"`
	Industry     string     `json:"industry" form:"industry" example:"fitness"`
	MinFollowers FlexString `json:"min_followers" form:"min_followers" swaggertype:"string" example:"3000"`
	MaxFollowers FlexString `json:"max_followers" form:"max_followers" swaggertype:"string" example:"100000"`
	SortBy       string     `json:"sort_by" form:"sort_by" example:"engagement_rate"`
	SortOrder    string     `json:"sort_order" form:"sort_order" example:"desc"`
}

func (r SearchRequest) toFinder() finder.Request {
	return finder.Request{
		Criteria: influencer.Criteria{
			Gender:       r.Gender,
			Country:      r.Country,
			Industry:     r.Industry,
			MinFollowers: string(r.MinFollowers),
			MaxFollowers: string(r.MaxFollowers),
		},
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

func (r SearchRequest) hasIndustry() bool {
	return strings.TrimSpace(r.Industry) != ""
}

// EngagementRequest is the body of POST /api/engagement.
type EngagementRequest struct {
	Username string `json:"username" example:"fitness_emma_fit"`
}

// ExportRequest is the body of POST /api/export. An empty Usernames list
// exports every result.
type ExportRequest struct {
	SearchRequest
	Usernames []string `json:"usernames"`
	Format    string   `json:"format" example:"csv"`
}

// ShortlistRequest is the body of POST /api/shortlists.
type ShortlistRequest struct {
	Name      string        `json:"name" example:"spring-campaign"`
	Usernames []string      `json:"usernames"`
	Filters   SearchRequest `json:"filters"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error      string `json:"error" example:"Industry/niche is required"`
	Field      string `json:"field,omitempty"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	Success bool                         `json:"success"`
	Count   int                          `json:"count"`
	Mode    string                       `json:"mode"`
	Filters finder.Request               `json:"filters"`
	Data    []influencer.EnrichedProfile `json:"data"`
}

// EngagementResponse is the body of a successful engagement lookup.
type EngagementResponse struct {
	Success bool                       `json:"success"`
	Data    influencer.EnrichedProfile `json:"data"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Mode      string `json:"mode" example:"demo"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}
