package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/store"
)

// bootstrapTimeout bounds the background fan-out a fresh login triggers.
const bootstrapTimeout = 30 * time.Second

// Bootstrapper is a role store's initial-load entry point. StartBootstrap
// role-gates and raises the loading flag synchronously; Bootstrap runs the
// fetches and clears it.
type Bootstrapper interface {
	StartBootstrap(identity domain.Identity) bool
	Bootstrap(ctx context.Context, identity domain.Identity)
}

// SessionHandler handles login, registration and logout.
type SessionHandler struct {
	auth   *store.AuthStore
	stores []Bootstrapper
	logger *zap.Logger
}

// NewSessionHandler creates a SessionHandler. stores are every role store;
// each decides for itself whether the identity's role concerns it.
func NewSessionHandler(auth *store.AuthStore, stores []Bootstrapper, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{auth: auth, stores: stores, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/session
func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	identity, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		case errors.Is(err, domain.ErrBackendUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
		default:
			h.logger.Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	h.bootstrap(identity)
	c.JSON(http.StatusOK, gin.H{"identity": identity, "token": h.auth.Token()})
}

// Register handles POST /api/v1/register
func (h *SessionHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	identity, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.bootstrap(identity)
	c.JSON(http.StatusCreated, gin.H{"identity": identity, "token": h.auth.Token()})
}

// Logout handles DELETE /api/v1/session
func (h *SessionHandler) Logout(c *gin.Context) {
	h.auth.Logout()
	for _, s := range h.stores {
		if r, ok := s.(interface{ Reset() }); ok {
			r.Reset()
		}
	}
	c.Status(http.StatusNoContent)
}

// bootstrap kicks off the role-matched initial load without blocking the
// login response. The matched store's loading flag is raised here,
// synchronously, before the response is written: a dashboard read that
// lands between login and the first fetch sees loading=true, never a
// ready-but-empty state. Stores whose role does not match empty themselves
// and issue no backend calls.
func (h *SessionHandler) bootstrap(identity domain.Identity) {
	for _, s := range h.stores {
		if !s.StartBootstrap(identity) {
			continue
		}
		go func(s Bootstrapper) {
			ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
			defer cancel()
			s.Bootstrap(ctx, identity)
		}(s)
	}
}
