package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/derive"
	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/store"
)

// CandidateHandler serves the candidate-facing views off the candidate store.
type CandidateHandler struct {
	store  *store.CandidateStore
	logger *zap.Logger
}

// NewCandidateHandler creates a CandidateHandler.
func NewCandidateHandler(s *store.CandidateStore, logger *zap.Logger) *CandidateHandler {
	return &CandidateHandler{store: s, logger: logger}
}

// Dashboard handles GET /api/v1/candidate/dashboard
func (h *CandidateHandler) Dashboard(c *gin.Context) {
	apps := h.store.Applications()
	c.JSON(http.StatusOK, gin.H{
		"loading":      h.store.Loading(),
		"openJobs":     len(h.store.Jobs()),
		"applications": apps,
		"statusCounts": derive.CountApplicationsByStatus(apps),
	})
}

// Jobs handles GET /api/v1/candidate/jobs?q=&status=&sort=
func (h *CandidateHandler) Jobs(c *gin.Context) {
	filter := derive.JobFilter{Query: c.Query("q")}
	for _, raw := range splitParam(c.Query("status")) {
		status := domain.JobStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown job status: " + raw})
			return
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	jobs := derive.SortJobs(
		derive.FilterJobs(h.store.Jobs(), filter),
		derive.ParseSortKey(c.Query("sort")),
	)
	c.JSON(http.StatusOK, gin.H{
		"loading": h.store.JobsLoading(),
		"jobs":    jobs,
	})
}

// Applications handles GET /api/v1/candidate/applications
func (h *CandidateHandler) Applications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loading":      h.store.ApplicationsLoading(),
		"applications": h.store.Applications(),
	})
}

// Apply handles POST /api/v1/candidate/applications
func (h *CandidateHandler) Apply(c *gin.Context) {
	var req domain.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.store.SubmitApplication(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateApplication):
			c.JSON(http.StatusConflict, gin.H{"error": "an application for this job already exists"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		case errors.Is(err, domain.ErrBackendUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
		default:
			h.logger.Error("submit application failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"applications": h.store.Applications()})
}

// splitParam splits a comma-separated query value, dropping empties.
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
