package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/config"
	handler "github.com/recruitdesk/recruitdesk/internal/delivery/http"
	"github.com/recruitdesk/recruitdesk/internal/feedbackmark"
	"github.com/recruitdesk/recruitdesk/internal/gateway/rest"
	"github.com/recruitdesk/recruitdesk/internal/store"
	"github.com/recruitdesk/recruitdesk/internal/transport"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("Starting RecruitDesk console")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Set Gin mode
	gin.SetMode(cfg.Console.GinMode)

	// Connect to Redis for the advisory feedback marks. The marks only
	// drive a UI affordance, so a missing Redis degrades to in-memory
	// marks instead of failing startup.
	marks := connectMarks(cfg.Redis.URL, logger)

	// Backend transport
	tokens := transport.NewTokenStore()
	client := transport.NewClient(cfg.Backend.BaseURL, tokens, cfg.Backend.Timeout, logger)

	// Gateways
	jobs := rest.NewJobGateway(client)
	applications := rest.NewApplicationGateway(client)
	interviews := rest.NewInterviewGateway(client)
	approvals := rest.NewApprovalGateway(client)
	users := rest.NewUserGateway(client)
	feedback := rest.NewFeedbackGateway(client)
	auth := rest.NewAuthGateway(client)

	// Role stores
	stores := handler.Stores{
		Auth:        store.NewAuthStore(auth, tokens, logger),
		Candidate:   store.NewCandidateStore(jobs, applications, logger),
		HR:          store.NewHRStore(jobs, applications, interviews, approvals, users, logger),
		Interviewer: store.NewInterviewerStore(interviews, feedback, marks, logger),
		Manager:     store.NewManagerStore(approvals, logger),
	}

	// Initialize router
	router := handler.NewRouter(stores, client, logger, cfg.Console.RateLimit)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Console.Port),
		Handler:      router,
		ReadTimeout:  cfg.Console.ReadTimeout,
		WriteTimeout: cfg.Console.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Console listening", zap.Int("port", cfg.Console.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down console...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Console stopped")
}

func connectMarks(redisURL string, logger *zap.Logger) feedbackmark.Store {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn("Invalid Redis URL, using in-memory feedback marks", zap.Error(err))
		return feedbackmark.NewMemoryStore()
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable, using in-memory feedback marks", zap.Error(err))
		return feedbackmark.NewMemoryStore()
	}

	logger.Info("Connected to Redis")
	return feedbackmark.NewRedisStore(rdb)
}
