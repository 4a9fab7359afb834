package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/derive"
	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/store"
)

// HRHandler serves the HR console views off the HR store.
type HRHandler struct {
	store  *store.HRStore
	logger *zap.Logger
}

// NewHRHandler creates an HRHandler.
func NewHRHandler(s *store.HRStore, logger *zap.Logger) *HRHandler {
	return &HRHandler{store: s, logger: logger}
}

// Dashboard handles GET /api/v1/hr/dashboard
func (h *HRHandler) Dashboard(c *gin.Context) {
	apps := h.store.Applications()
	interviews := h.store.Interviews()

	weekly, err := h.store.WeeklyApplications(c.Request.Context())
	if err != nil {
		// The chart is optional; fall back to the local grouping so the
		// dashboard still renders when the analytics endpoint is down.
		h.logger.Warn("weekly series unavailable, deriving locally", zap.Error(err))
		weekly = derive.GroupApplicationsByDay(apps)
	}

	c.JSON(http.StatusOK, gin.H{
		"loading":            h.store.Loading(),
		"metrics":            derive.Metrics(h.store.Jobs(), apps, interviews),
		"statusCounts":       derive.CountApplicationsByStatus(apps),
		"interviewCounts":    derive.CountInterviewsByStatus(interviews),
		"averageScore":       derive.AverageKeywordScore(apps),
		"weeklyApplications": weekly,
	})
}

// Jobs handles GET /api/v1/hr/jobs
func (h *HRHandler) Jobs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loading": h.store.JobsLoading(),
		"jobs":    h.store.Jobs(),
	})
}

// PublishJob handles POST /api/v1/hr/jobs
func (h *HRHandler) PublishJob(c *gin.Context) {
	var req domain.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.store.PublishJob(c.Request.Context(), req); err != nil {
		h.writeError(c, err, "publish job")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"jobs": h.store.Jobs()})
}

// UpdateJob handles PUT /api/v1/hr/jobs/:id
func (h *HRHandler) UpdateJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown job status"})
		return
	}

	if err := h.store.UpdateJob(c.Request.Context(), id, req); err != nil {
		h.writeError(c, err, "update job")
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": h.store.Jobs()})
}

// Applications handles GET /api/v1/hr/applications?q=&status=&minScore=&jobId=&sort=
func (h *HRHandler) Applications(c *gin.Context) {
	filter := derive.ApplicationFilter{Query: c.Query("q")}
	for _, raw := range splitParam(c.Query("status")) {
		status := domain.ApplicationStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown application status: " + raw})
			return
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	if raw := c.Query("minScore"); raw != "" {
		minScore, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minScore must be an integer"})
			return
		}
		filter.MinScore = &minScore
	}
	if raw := c.Query("jobId"); raw != "" {
		jobID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "jobId must be an integer"})
			return
		}
		filter.JobID = &jobID
	}

	apps := derive.SortApplications(
		derive.FilterApplications(h.store.Applications(), filter),
		derive.ParseSortKey(c.Query("sort")),
	)
	c.JSON(http.StatusOK, gin.H{
		"loading":      h.store.ApplicationsLoading(),
		"applications": apps,
	})
}

// UpdateApplication handles PUT /api/v1/hr/applications/:id
func (h *HRHandler) UpdateApplication(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown application status"})
		return
	}

	if err := h.store.UpdateApplication(c.Request.Context(), id, req); err != nil {
		h.writeError(c, err, "update application")
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": h.store.Applications()})
}

// Interviews handles GET /api/v1/hr/interviews
func (h *HRHandler) Interviews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loading":    h.store.InterviewsLoading(),
		"interviews": h.store.Interviews(),
	})
}

// ScheduleInterview handles POST /api/v1/hr/interviews
func (h *HRHandler) ScheduleInterview(c *gin.Context) {
	var req domain.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.store.ScheduleInterview(c.Request.Context(), req); err != nil {
		h.writeError(c, err, "schedule interview")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"interviews": h.store.Interviews()})
}

// UpdateInterview handles PUT /api/v1/hr/interviews/:id
func (h *HRHandler) UpdateInterview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.store.UpdateInterview(c.Request.Context(), id, req); err != nil {
		h.writeError(c, err, "update interview")
		return
	}
	c.JSON(http.StatusOK, gin.H{"interviews": h.store.Interviews()})
}

// Approvals handles GET /api/v1/hr/approvals
func (h *HRHandler) Approvals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loading":      h.store.ApprovalsLoading(),
		"pending":      h.store.PendingApprovals(),
		"requirements": h.store.Requirements(),
	})
}

// Approve handles POST /api/v1/hr/approvals/:id/approve
func (h *HRHandler) Approve(c *gin.Context) {
	h.decide(c, h.store.ApproveRequirement)
}

// Reject handles POST /api/v1/hr/approvals/:id/reject
func (h *HRHandler) Reject(c *gin.Context) {
	h.decide(c, h.store.RejectRequirement)
}

func (h *HRHandler) decide(c *gin.Context, decision func(ctx context.Context, id int64) error) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := decision(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "decide requirement")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pending":      h.store.PendingApprovals(),
		"requirements": h.store.Requirements(),
	})
}

// Users handles GET /api/v1/hr/users
func (h *HRHandler) Users(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loading": h.store.UsersLoading(),
		"users":   h.store.Users(),
	})
}

// CreateUser handles POST /api/v1/hr/users
func (h *HRHandler) CreateUser(c *gin.Context) {
	var req domain.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	if err := h.store.CreateUser(c.Request.Context(), req); err != nil {
		h.writeError(c, err, "create user")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"users": h.store.Users()})
}

// UpdateUser handles PUT /api/v1/hr/users/:id
func (h *HRHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.store.UpdateUser(c.Request.Context(), id, req); err != nil {
		h.writeError(c, err, "update user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": h.store.Users()})
}

// DeleteUser handles DELETE /api/v1/hr/users/:id
func (h *HRHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteUser(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "delete user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": h.store.Users()})
}

func (h *HRHandler) writeError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, domain.ErrBackendUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	default:
		h.logger.Error(action+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// pathID parses the :id segment; on failure it writes the 400 itself.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
