package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/transport"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	client *transport.Client
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(client *transport.Client, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{client: client, logger: logger}
}

// Health handles GET /api/v1/health. The backend probe is best-effort: a
// failure degrades the field, never the endpoint.
func (h *HealthHandler) Health(c *gin.Context) {
	backend := "ok"
	start := time.Now()
	if err := h.client.Get(c.Request.Context(), "/health", nil); err != nil {
		backend = "unreachable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"services": gin.H{
			"backend": backend,
		},
		"backendLatencyMs": time.Since(start).Milliseconds(),
	})
}
