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

// ManagerHandler serves the manager views off the manager store.
type ManagerHandler struct {
	store  *store.ManagerStore
	logger *zap.Logger
}

// NewManagerHandler creates a ManagerHandler.
func NewManagerHandler(s *store.ManagerStore, logger *zap.Logger) *ManagerHandler {
	return &ManagerHandler{store: s, logger: logger}
}

// Dashboard handles GET /api/v1/manager/dashboard
func (h *ManagerHandler) Dashboard(c *gin.Context) {
	requirements := h.store.Requirements()
	c.JSON(http.StatusOK, gin.H{
		"loading":      h.store.Loading(),
		"requirements": requirements,
		"statusCounts": derive.CountRequirementsByStatus(requirements),
	})
}

// Requirements handles GET /api/v1/manager/requirements
func (h *ManagerHandler) Requirements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loading":      h.store.Loading(),
		"requirements": h.store.Requirements(),
	})
}

// SubmitRequirement handles POST /api/v1/manager/requirements
func (h *ManagerHandler) SubmitRequirement(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)
	var req domain.CreateRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.store.SubmitRequirement(c.Request.Context(), identity, req); err != nil {
		if errors.Is(err, domain.ErrBackendUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
			return
		}
		h.logger.Error("submit requirement failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"requirements": h.store.Requirements()})
}
