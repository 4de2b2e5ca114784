package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apisetup "notify-server/internal/api"
	"notify-server/internal/bootstrap"
	"notify-server/internal/config"
	"notify-server/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger
	serveErr   chan error
}

const shutdownTimeout = 10 * time.Second

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: logger,
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	s.router = gin.New()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS", "DELETE"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Cache-Control", "X-Request-ID"}
	corsConfig.AllowOrigins = []string{s.config.Services.WebAppURI}

	// Allow localhost in non-production
	if os.Getenv("GO_ENV") != "production" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}

	// Apply middleware
	s.router.Use(cors.New(corsConfig))
	s.router.Use(observability.Middleware(s.logger, s.deps.Metrics))

	// Register routes
	rootRouter := s.router.Group("/")
	api := apisetup.New(rootRouter, apisetup.Handlers{
		Subscribers:   s.deps.SubscriberHandler,
		Segments:      s.deps.SegmentHandler,
		Campaigns:     s.deps.CampaignHandler,
		Engagement:    s.deps.EngagementHandler,
		Devices:       s.deps.DeviceHandler,
		Notifications: s.deps.NotificationHandler,
		Analytics:     s.deps.AnalyticsHandler,
		Automations:   s.deps.AutomationHandler,
	}, s.deps.RateLimiter.ByClientIP("tracking", s.config.Server.TrackingRateLimit))
	api.RegisterRoutes()
}

// Start launches the scheduler sweep and the HTTP listener. Listener failures
// surface through WaitForShutdown.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("server: Setup must be called before Start")
	}

	go s.deps.CampaignScheduler.Start(ctx)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.serveErr = make(chan error, 1)

	go func() {
		s.logger.Info(ctx, fmt.Sprintf("Server starting on port %d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.serveErr <- err
		}
	}()

	return nil
}

// WaitForShutdown blocks until SIGINT, SIGTERM or a listener failure, then
// stops the scheduler, drains in-flight requests and releases dependencies.
func (s *Server) WaitForShutdown(ctx context.Context) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var serveErr error
	select {
	case <-sigCtx.Done():
		s.logger.Info(ctx, "Shutting down server...")
	case serveErr = <-s.serveErr:
		s.logger.Error(ctx, "server failed", serveErr)
	}

	s.deps.CampaignScheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.deps.Cleanup()
	if err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if serveErr != nil {
		return fmt.Errorf("server failed: %w", serveErr)
	}

	s.logger.Info(ctx, "Server exited gracefully")
	return nil
}
