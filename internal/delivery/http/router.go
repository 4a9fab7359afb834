// Package http exposes the console's own HTTP surface: session management,
// role-scoped dashboards and the pass-through actions, all served from the
// store snapshots rather than the backend directly.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/delivery/http/middleware"
	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/store"
	"github.com/recruitdesk/recruitdesk/internal/transport"
)

const maxBodyBytes = 1 << 20 // JSON payloads only; resumes never pass through here

// Stores bundles the per-role state the router serves from.
type Stores struct {
	Auth        *store.AuthStore
	Candidate   *store.CandidateStore
	HR          *store.HRStore
	Interviewer *store.InterviewerStore
	Manager     *store.ManagerStore
}

// NewRouter creates and configures the Gin router with all routes and middleware.
func NewRouter(stores Stores, client *transport.Client, logger *zap.Logger, rateLimitPerMin int) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))

	// Metrics endpoint (no rate limiting)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	limited := middleware.RateLimiter(rateLimitPerMin)
	bodyLimit := middleware.BodySizeLimit(maxBodyBytes)

	v1 := router.Group("/api/v1")
	{
		healthHandler := NewHealthHandler(client, logger)
		v1.GET("/health", healthHandler.Health)

		sessionHandler := NewSessionHandler(stores.Auth, []Bootstrapper{
			stores.Candidate, stores.HR, stores.Interviewer, stores.Manager,
		}, logger)
		v1.POST("/session", limited, bodyLimit, sessionHandler.Login)
		v1.DELETE("/session", sessionHandler.Logout)
		v1.POST("/register", limited, bodyLimit, sessionHandler.Register)

		candidateHandler := NewCandidateHandler(stores.Candidate, logger)
		candidate := v1.Group("/candidate", middleware.RequireRole(stores.Auth, domain.RoleCandidate))
		{
			candidate.GET("/dashboard", candidateHandler.Dashboard)
			candidate.GET("/jobs", candidateHandler.Jobs)
			candidate.GET("/applications", candidateHandler.Applications)
			candidate.POST("/applications", limited, bodyLimit, candidateHandler.Apply)
		}

		hrHandler := NewHRHandler(stores.HR, logger)
		hr := v1.Group("/hr", middleware.RequireRole(stores.Auth, domain.RoleHR))
		{
			hr.GET("/dashboard", hrHandler.Dashboard)
			hr.GET("/jobs", hrHandler.Jobs)
			hr.POST("/jobs", limited, bodyLimit, hrHandler.PublishJob)
			hr.PUT("/jobs/:id", limited, bodyLimit, hrHandler.UpdateJob)
			hr.GET("/applications", hrHandler.Applications)
			hr.PUT("/applications/:id", limited, bodyLimit, hrHandler.UpdateApplication)
			hr.GET("/interviews", hrHandler.Interviews)
			hr.POST("/interviews", limited, bodyLimit, hrHandler.ScheduleInterview)
			hr.PUT("/interviews/:id", limited, bodyLimit, hrHandler.UpdateInterview)
			hr.GET("/approvals", hrHandler.Approvals)
			hr.POST("/approvals/:id/approve", limited, hrHandler.Approve)
			hr.POST("/approvals/:id/reject", limited, hrHandler.Reject)
			hr.GET("/users", hrHandler.Users)
			hr.POST("/users", limited, bodyLimit, hrHandler.CreateUser)
			hr.PUT("/users/:id", limited, bodyLimit, hrHandler.UpdateUser)
			hr.DELETE("/users/:id", limited, hrHandler.DeleteUser)
		}

		managerHandler := NewManagerHandler(stores.Manager, logger)
		manager := v1.Group("/manager", middleware.RequireRole(stores.Auth, domain.RoleManager))
		{
			manager.GET("/dashboard", managerHandler.Dashboard)
			manager.GET("/requirements", managerHandler.Requirements)
			manager.POST("/requirements", limited, bodyLimit, managerHandler.SubmitRequirement)
		}

		interviewerHandler := NewInterviewerHandler(stores.Interviewer, logger)
		interviewer := v1.Group("/interviewer", middleware.RequireRole(stores.Auth, domain.RoleInterviewer))
		{
			interviewer.GET("/dashboard", interviewerHandler.Dashboard)
			interviewer.GET("/interviews", interviewerHandler.Interviews)
			interviewer.GET("/interviews/:id/feedback", interviewerHandler.Feedback)
			interviewer.POST("/feedback", limited, bodyLimit, interviewerHandler.SubmitFeedback)
			interviewer.PUT("/feedback/:id", limited, bodyLimit, interviewerHandler.UpdateFeedback)
		}
	}

	return router
}
