package handlers

import (
	"net/http"

	"workmate/client"
	"workmate/services/feed"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StudentHandler serves the student dashboard: browsing, searching,
// sorting, suggestions, applying, and the student's own profile. All
// routes sit behind the student role guard.
type StudentHandler struct {
	API  *client.Client
	Feed *feed.Service
}

func NewStudentHandler(api *client.Client, feedSvc *feed.Service) *StudentHandler {
	return &StudentHandler{API: api, Feed: feedSvc}
}

// DashboardHandler assembles the landing payload for /student: the
// student's profile plus the backend's suggested jobs.
func (h *StudentHandler) DashboardHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := currentIdentity(c)
	if !ok {
		logger.Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.API.GetStudent(c.Request.Context(), id.ID)
	if err != nil {
		logger.Error("Failed to load student profile", zap.Error(err))
		respondAPIError(c, err, "Dashboard")
		return
	}

	// Suggestions are decoration on the dashboard; their failure should not
	// blank the whole page.
	suggested, err := h.API.SuggestedJobs(c.Request.Context(), id.ID)
	if err != nil {
		logger.Warn("Failed to load suggested jobs", zap.Error(err))
		suggested = nil
	}

	c.JSON(http.StatusOK, gin.H{"user": profile, "suggested_jobs": suggested})
}

// ListJobsHandler returns the open-jobs feed, served from cache when fresh.
func (h *StudentHandler) ListJobsHandler(c *gin.Context) {
	jobs, err := h.Feed.OpenJobs(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list jobs", zap.Error(err))
		respondAPIError(c, err, "Job listing")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// SearchJobsHandler proxies the backend's job search.
func (h *StudentHandler) SearchJobsHandler(c *gin.Context) {
	query := c.Query("q")
	jobs, err := h.API.SearchJobs(c.Request.Context(), query)
	if err != nil {
		getLogger(c).Error("Job search failed", zap.String("q", query), zap.Error(err))
		respondAPIError(c, err, "Job search")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// SortJobsHandler proxies the backend's job sorting.
func (h *StudentHandler) SortJobsHandler(c *gin.Context) {
	by := c.DefaultQuery("by", "pay")
	order := c.DefaultQuery("order", "desc")
	jobs, err := h.API.SortJobs(c.Request.Context(), by, order)
	if err != nil {
		getLogger(c).Error("Job sort failed", zap.String("by", by), zap.Error(err))
		respondAPIError(c, err, "Job sort")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// SuggestedJobsHandler returns the backend's ranked suggestions for the
// signed-in student.
func (h *StudentHandler) SuggestedJobsHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := currentIdentity(c)
	if !ok {
		logger.Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobs, err := h.API.SuggestedJobs(c.Request.Context(), id.ID)
	if err != nil {
		logger.Error("Failed to load suggested jobs", zap.Error(err))
		respondAPIError(c, err, "Job suggestions")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ApplyHandler submits an application for the signed-in student and drops
// the cached feed, since the job is no longer open.
func (h *StudentHandler) ApplyHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := currentIdentity(c)
	if !ok {
		logger.Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID := c.Param("id")
	if err := h.API.Apply(c.Request.Context(), jobID, id.ID); err != nil {
		logger.Error("Job application failed", zap.String("jobID", jobID), zap.Error(err))
		respondAPIError(c, err, "Job application")
		return
	}

	h.Feed.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Application submitted"})
}

// ProfileHandler returns the signed-in student's profile with job history.
func (h *StudentHandler) ProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := currentIdentity(c)
	if !ok {
		logger.Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.API.GetStudent(c.Request.Context(), id.ID)
	if err != nil {
		logger.Error("Failed to load student profile", zap.Error(err))
		respondAPIError(c, err, "Profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
