package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"influencerfinder/internal/metrics"
	"influencerfinder/pkg/config"
	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/export"
	"influencerfinder/pkg/finder"
	"influencerfinder/pkg/influencer"
	"influencerfinder/pkg/results"
	"influencerfinder/pkg/shortlist"
)

// health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (s *Server) health(c *gin.Context) {
	mode := s.service.Mode()
	msg := "Running in DEMO mode with mock data"
	if mode == config.ModeLive {
		msg = "Running in LIVE mode with RapidAPI"
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Mode:      mode,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Message:   msg,
	})
}

// search godoc
// @Summary      Search influencers
// @Description  Filters profiles by gender, country, niche and follower range and sorts them by an engagement metric.
// @Tags         influencers
// @Accept       json
// @Produce      json
// @Param        request  body      SearchRequest  true  "Search filters"
// @Success      200      {object}  SearchResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Failure      503      {object}  ErrorResponse  "Live search unavailable"
// @Router       /search [post]
func (s *Server) search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	if !req.hasIndustry() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgIndustryRequired, Field: "industry"})
		return
	}

	resp, err := s.runSearch(c, req.toFinder(), nil)
	if err != nil {
		s.writeError(c, err, msgSearchFailed)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Success: true,
		Count:   len(resp.Profiles),
		Mode:    resp.Mode,
		Filters: resp.Request,
		Data:    resp.Profiles,
	})
}

// runSearch runs a search and records its outcome.
func (s *Server) runSearch(c *gin.Context, req finder.Request, progress finder.ProgressFunc) (*finder.Response, error) {
	start := time.Now()
	resp, err := s.service.SearchWithProgress(c.Request.Context(), req, progress)
	if err != nil {
		metrics.ObserveSearch(s.service.Mode(), string(errs.TypeOf(err)), 0, time.Since(start))
		return nil, err
	}
	metrics.ObserveSearch(resp.Mode, "ok", len(resp.Profiles), resp.Duration)
	return resp, nil
}

// engagement godoc
// @Summary      Engagement for one profile
// @Tags         influencers
// @Accept       json
// @Produce      json
// @Param        request  body      EngagementRequest  true  "Username"
// @Success      200      {object}  EngagementResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /engagement [post]
func (s *Server) engagement(c *gin.Context) {
	var req EngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Username) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgUsernameRequired, Field: "username"})
		return
	}

	p, err := s.service.Engagement(c.Request.Context(), req.Username)
	if err != nil {
		if errs.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: msgUserNotFound})
			return
		}
		s.writeError(c, err, msgEngagementFailed)
		return
	}

	c.JSON(http.StatusOK, EngagementResponse{Success: true, Data: p})
}

// export godoc
// @Summary      Export search results
// @Description  Runs the search and returns the chosen profiles (all when usernames is empty) as a CSV or JSON attachment.
// @Tags         influencers
// @Accept       json
// @Produce      text/csv
// @Produce      json
// @Param        request  body      ExportRequest  true  "Filters, selection and format"
// @Success      200      {file}    file
// @Failure      400      {object}  ErrorResponse
// @Router       /export [post]
func (s *Server) export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		s.writeError(c, err, "")
		return
	}
	if !req.hasIndustry() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgIndustryRequired, Field: "industry"})
		return
	}

	profiles, err := s.selectProfiles(c, req.SearchRequest, req.Usernames)
	if err != nil {
		s.writeError(c, err, msgSearchFailed)
		return
	}

	var buf bytes.Buffer
	if err := export.Render(&buf, format, profiles); err != nil {
		s.writeError(c, err, "Failed to export results")
		return
	}

	metrics.IncExport(format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.DefaultFilename(s.now(), format)))
	c.Data(http.StatusOK, export.ContentType(format), buf.Bytes())
}

// selectProfiles searches with req and keeps the named profiles, or all of
// them when usernames is empty.
func (s *Server) selectProfiles(c *gin.Context, req SearchRequest, usernames []string) ([]influencer.EnrichedProfile, error) {
	resp, err := s.runSearch(c, req.toFinder(), nil)
	if err != nil {
		return nil, err
	}

	view := results.NewView(resp.Profiles, influencer.ParseSortField(req.SortBy), influencer.ParseOrder(req.SortOrder))
	if len(usernames) == 0 {
		return view.Profiles(), nil
	}

	view = view.Select(usernames...)
	if view.SelectedCount() == 0 {
		return nil, errs.InvalidArgument("usernames", "Please select at least one influencer to export")
	}
	return view.Selected(), nil
}

// listShortlists godoc
// @Summary      List shortlists
// @Tags         shortlists
// @Produce      json
// @Success      200  {array}   shortlist.Summary
// @Router       /shortlists [get]
func (s *Server) listShortlists(c *gin.Context) {
	if !s.requireShortlists(c) {
		return
	}
	list, err := s.shortlists.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err, "Failed to list shortlists")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(list), "data": list})
}

// saveShortlist godoc
// @Summary      Save a shortlist
// @Description  Runs the search in filters and stores the named profiles (all when usernames is empty) under name, replacing any list of that name.
// @Tags         shortlists
// @Accept       json
// @Produce      json
// @Param        request  body      ShortlistRequest  true  "Shortlist"
// @Success      201      {object}  shortlist.Shortlist
// @Failure      400      {object}  ErrorResponse
// @Router       /shortlists [post]
func (s *Server) saveShortlist(c *gin.Context) {
	if !s.requireShortlists(c) {
		return
	}
	var req ShortlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	if err := shortlist.ValidateName(req.Name); err != nil {
		s.writeError(c, err, "")
		return
	}
	if !req.Filters.hasIndustry() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgIndustryRequired, Field: "industry"})
		return
	}

	profiles, err := s.selectProfiles(c, req.Filters, req.Usernames)
	if err != nil {
		s.writeError(c, err, msgSearchFailed)
		return
	}

	sl := shortlist.Shortlist{
		Name:     strings.TrimSpace(req.Name),
		Mode:     s.service.Mode(),
		Criteria: req.Filters.toFinder().Criteria,
		Profiles: profiles,
	}
	if err := s.shortlists.Save(c.Request.Context(), sl); err != nil {
		s.writeError(c, err, "Failed to save shortlist")
		return
	}

	saved, err := s.shortlists.Get(c.Request.Context(), sl.Name)
	if err != nil {
		s.writeError(c, err, "Failed to load shortlist")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": saved})
}

// getShortlist godoc
// @Summary      Get a shortlist
// @Tags         shortlists
// @Produce      json
// @Param        name  path      string  true  "Shortlist name"
// @Success      200   {object}  shortlist.Shortlist
// @Failure      404   {object}  ErrorResponse
// @Router       /shortlists/{name} [get]
func (s *Server) getShortlist(c *gin.Context) {
	if !s.requireShortlists(c) {
		return
	}
	sl, err := s.shortlists.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.writeError(c, err, "Failed to load shortlist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": sl})
}

// deleteShortlist godoc
// @Summary      Delete a shortlist
// @Tags         shortlists
// @Param        name  path  string  true  "Shortlist name"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /shortlists/{name} [delete]
func (s *Server) deleteShortlist(c *gin.Context) {
	if !s.requireShortlists(c) {
		return
	}
	if err := s.shortlists.Delete(c.Request.Context(), c.Param("name")); err != nil {
		s.writeError(c, err, "Failed to delete shortlist")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) requireShortlists(c *gin.Context) bool {
	if s.shortlists == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Shortlist storage is not configured"})
		return false
	}
	return true
}
