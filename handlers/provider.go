package handlers

import (
	"net/http"

	"workmate/client"
	"workmate/models"
	"workmate/services/feed"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves the provider dashboard: posting and managing
// jobs, rating students, and requesting optimal assignments. All routes
// sit behind the provider role guard.
type ProviderHandler struct {
	API  *client.Client
	Feed *feed.Service
}

func NewProviderHandler(api *client.Client, feedSvc *feed.Service) *ProviderHandler {
	return &ProviderHandler{API: api, Feed: feedSvc}
}

// DashboardHandler assembles the landing payload for /provider: the
// provider's profile and its postings.
func (h *ProviderHandler) DashboardHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := currentIdentity(c)
	if !ok {
		logger.Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.API.GetProvider(c.Request.Context(), id.ID)
	if err != nil {
		logger.Error("Failed to load provider profile", zap.Error(err))
		respondAPIError(c, err, "Dashboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": profile, "jobs": profile.Jobs})
}

// ListJobsHandler returns every job the signed-in provider has posted.
func (h *ProviderHandler) ListJobsHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := currentIdentity(c)
	if !ok {
		logger.Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobs, err := h.API.ProviderJobs(c.Request.Context(), id.ID)
	if err != nil {
		logger.Error("Failed to list provider jobs", zap.Error(err))
		respondAPIError(c, err, "Job listing")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJobHandler posts a new job under the signed-in provider.
func (h *ProviderHandler) CreateJobHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := currentIdentity(c)
	if !ok {
		logger.Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid job posting", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	input.ProviderID = id.ID

	job, err := h.API.CreateJob(c.Request.Context(), input)
	if err != nil {
		logger.Error("Job creation failed", zap.Error(err))
		respondAPIError(c, err, "Job creation")
		return
	}

	h.Feed.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, job)
}

// UpdateJobHandler edits one of the provider's postings.
func (h *ProviderHandler) UpdateJobHandler(c *gin.Context) {
	logger := getLogger(c)

	var update models.JobUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Error("Invalid job update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	jobID := c.Param("id")
	if err := h.API.UpdateJob(c.Request.Context(), jobID, update); err != nil {
		logger.Error("Job update failed", zap.String("jobID", jobID), zap.Error(err))
		respondAPIError(c, err, "Job update")
		return
	}

	h.Feed.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Job updated"})
}

// DeleteJobHandler removes one of the provider's postings.
func (h *ProviderHandler) DeleteJobHandler(c *gin.Context) {
	logger := getLogger(c)

	jobID := c.Param("id")
	if err := h.API.DeleteJob(c.Request.Context(), jobID); err != nil {
		logger.Error("Job deletion failed", zap.String("jobID", jobID), zap.Error(err))
		respondAPIError(c, err, "Job deletion")
		return
	}

	h.Feed.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// ProfileHandler returns the signed-in provider's profile.
func (h *ProviderHandler) ProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := currentIdentity(c)
	if !ok {
		logger.Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.API.GetProvider(c.Request.Context(), id.ID)
	if err != nil {
		logger.Error("Failed to load provider profile", zap.Error(err))
		respondAPIError(c, err, "Profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RateStudentHandler submits a rating for a student who worked a job.
func (h *ProviderHandler) RateStudentHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Rating float64 `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid rating request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	studentID := c.Param("id")
	if err := h.API.RateStudent(c.Request.Context(), studentID, req.Rating); err != nil {
		logger.Error("Rating failed", zap.String("studentID", studentID), zap.Error(err))
		respondAPIError(c, err, "Rating")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student rated"})
}

// OptimalAssignmentHandler asks the backend to compute the best
// student/job pairing for the provided sets.
func (h *ProviderHandler) OptimalAssignmentHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid assignment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	assignments, err := h.API.OptimalAssignment(c.Request.Context(), req)
	if err != nil {
		logger.Error("Optimal assignment failed", zap.Error(err))
		respondAPIError(c, err, "Optimal assignment")
		return
	}

	// Assignment closes jobs, so the open feed is stale.
	h.Feed.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}
