// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"raidmaster/src/app/http/handler"
	"raidmaster/src/app/http/response"
	"raidmaster/src/app/middleware"
	"raidmaster/src/core/ports"
	"raidmaster/src/core/usecase"
	"raidmaster/src/infra/config"
	"raidmaster/src/infra/logger"
)

// Deps are the adapters the server wires into the use cases. Summarizer
// and Notifier may be nil; submissions then use the local fallbacks.
type Deps struct {
	Store      ports.KeyValueStore
	Summarizer ports.SummaryGenerator
	Notifier   ports.Notifier
	Clock      ports.Clock
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	gate *usecase.AdminGate

	// Handlers
	healthHandler       *handler.HealthHandler
	configHandler       *handler.ConfigHandler
	adminHandler        *handler.AdminHandler
	calendarHandler     *handler.CalendarHandler
	registrationHandler *handler.RegistrationHandler
	recordsHandler      *handler.RecordsHandler
	shareHandler        *handler.ShareHandler
}

// New wires the use cases, handlers and routes over deps.
func New(cfg *config.Config, log *slog.Logger, deps Deps) *Server {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	healthService := usecase.NewHealthService(deps.Store, log)
	configService := usecase.NewFormConfigService(deps.Store, logger.WithComponent(log, "form_config"))
	recordService := usecase.NewRecordService(deps.Store, logger.WithComponent(log, "records"))
	gate := usecase.NewAdminGate(deps.Store, logger.WithComponent(log, "admin_gate"))
	calendarService := usecase.NewCalendarService(clock)
	shareService := usecase.NewShareService(configService, recordService, clock)
	pipeline := usecase.NewSubmissionPipeline(
		configService,
		recordService,
		deps.Summarizer,
		deps.Notifier,
		usecase.PipelineOptions{
			SummaryTimeout: cfg.Summary.Timeout,
			DisplayDelay:   cfg.Submission.DisplayDelay,
			Clock:          clock,
		},
		logger.WithComponent(log, "submission"),
	)
	flows := usecase.NewSubmissionRegistry(pipeline, clock, cfg.Submission.SessionTTL)

	s := &Server{
		cfg:                 cfg,
		log:                 log,
		router:              router,
		gate:                gate,
		healthHandler:       handler.NewHealthHandler(healthService),
		configHandler:       handler.NewConfigHandler(configService),
		adminHandler:        handler.NewAdminHandler(gate),
		calendarHandler:     handler.NewCalendarHandler(calendarService),
		registrationHandler: handler.NewRegistrationHandler(flows, configService),
		recordsHandler:      handler.NewRecordsHandler(recordService, shareService),
		shareHandler:        handler.NewShareHandler(shareService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Recovery first so it wraps everything.
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints (no gate)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	// API v1 routes
	v1 := s.router.Group("/v1")
	{
		// Form
		v1.GET("/config", s.configHandler.Get)
		v1.GET("/calendar", s.calendarHandler.Month)
		v1.GET("/share", s.shareHandler.Link)

		// Registration flow, keyed by X-Session-ID
		reg := v1.Group("/registrations", middleware.SessionID())
		reg.POST("", s.registrationHandler.Submit)
		reg.GET("/state", s.registrationHandler.State)
		reg.POST("/reset", s.registrationHandler.Reset)

		// Roster
		v1.GET("/records", s.recordsHandler.List)
		v1.GET("/records/export", s.recordsHandler.Export)

		// Settings gate
		v1.POST("/admin/login", s.adminHandler.Login)

		admin := v1.Group("/admin", middleware.AdminGate(s.gate))
		admin.GET("/config", s.configHandler.AdminGet)
		admin.PUT("/config", s.configHandler.Save)
		admin.PUT("/secret", s.adminHandler.ChangeSecret)
		admin.DELETE("/records", s.recordsHandler.Clear)
		admin.DELETE("/records/:record_id", s.recordsHandler.Remove)
	}

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting HTTP server", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}
	return s.Shutdown()
}

// Shutdown stops accepting requests and waits up to ShutdownTimeout for
// in-flight submissions to finish.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

// Router exposes the engine for in-process tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
