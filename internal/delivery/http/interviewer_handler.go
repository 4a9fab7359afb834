package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/delivery/http/middleware"
	"github.com/recruitdesk/recruitdesk/internal/derive"
	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/store"
)

// InterviewerHandler serves the interviewer views off the interviewer store.
type InterviewerHandler struct {
	store  *store.InterviewerStore
	logger *zap.Logger
}

// NewInterviewerHandler creates an InterviewerHandler.
func NewInterviewerHandler(s *store.InterviewerStore, logger *zap.Logger) *InterviewerHandler {
	return &InterviewerHandler{store: s, logger: logger}
}

// Dashboard handles GET /api/v1/interviewer/dashboard
func (h *InterviewerHandler) Dashboard(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	interviews := h.store.Interviews()

	submitted := make(map[int64]bool, len(interviews))
	for _, iv := range interviews {
		submitted[iv.InterviewID] = h.store.HasSubmitted(c.Request.Context(), identity, iv.InterviewID)
	}

	c.JSON(http.StatusOK, gin.H{
		"loading":      h.store.Loading(),
		"interviews":   interviews,
		"statusCounts": derive.CountInterviewsByStatus(interviews),
		"submitted":    submitted,
	})
}

// Interviews handles GET /api/v1/interviewer/interviews
func (h *InterviewerHandler) Interviews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loading":    h.store.Loading(),
		"interviews": h.store.Interviews(),
	})
}

// Feedback handles GET /api/v1/interviewer/interviews/:id/feedback
func (h *InterviewerHandler) Feedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	fb, err := h.store.FeedbackFor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no feedback for this interview"})
			return
		}
		h.logger.Error("feedback lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, fb)
}

// SubmitFeedback handles POST /api/v1/interviewer/feedback
func (h *InterviewerHandler) SubmitFeedback(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	var req domain.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.store.SubmitFeedback(c.Request.Context(), identity, req); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "interview not found"})
		case errors.Is(err, domain.ErrBackendUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
		default:
			h.logger.Error("submit feedback failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"interviews": h.store.Interviews()})
}

// UpdateFeedback handles PUT /api/v1/interviewer/feedback/:id
func (h *InterviewerHandler) UpdateFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.store.UpdateFeedback(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "feedback not found"})
			return
		}
		h.logger.Error("update feedback failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interviews": h.store.Interviews()})
}
