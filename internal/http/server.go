// Package http provides the HTTP server, its router and the probe handlers.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	authDomain "github.com/sijosaji/kitchensink/internal/auth/domain"
	authHTTP "github.com/sijosaji/kitchensink/internal/auth/http"
	authUseCase "github.com/sijosaji/kitchensink/internal/auth/usecase"
	"github.com/sijosaji/kitchensink/internal/config"
	memberHTTP "github.com/sijosaji/kitchensink/internal/member/http"
	"github.com/sijosaji/kitchensink/internal/metrics"
)

// MembersBasePath is the route prefix of the member API.
const MembersBasePath = "/kitchensink/rest/members"

// DatabasePinger is satisfied by *mongo.Client.
type DatabasePinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Server represents the HTTP server.
type Server struct {
	db     DatabasePinger
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(
	db DatabasePinger,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine: global middleware, probes and the member routes.
// Every member route runs the gate chain with its own capability set before the handler.
func (s *Server) SetupRouter(
	cfg *config.Config,
	memberHandler *memberHTTP.MemberHandler,
	authorizationGate authUseCase.AuthorizationGate,
	rateLimitGate authUseCase.RateLimitGate,
	metricsProvider *metrics.Provider,
	metricsNamespace string,
) {
	router := gin.New()

	router.Use(RecoveryMiddleware(s.logger))
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	gated := func(capabilities ...authDomain.Capability) []gin.HandlerFunc {
		return authHTTP.Gates(authorizationGate, rateLimitGate, authDomain.Require(capabilities...), s.logger)
	}
	route := func(gates []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(gates, handler)
	}

	members := router.Group(MembersBasePath)
	{
		members.GET("", route(gated(authDomain.MembersReadCapability), memberHandler.ListHandler)...)
		members.GET("/:id", route(gated(authDomain.MembersReadCapability), memberHandler.GetHandler)...)
		members.POST("", route(gated(authDomain.MembersWriteCapability), memberHandler.CreateHandler)...)
		members.PATCH("/:id", route(gated(authDomain.MembersWriteCapability), memberHandler.UpdateHandler)...)
		members.DELETE("/:id", route(gated(authDomain.MembersDeleteCapability), memberHandler.DeleteHandler)...)
	}

	s.router = router
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready only when MongoDB answers a primary ping.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.db == nil {
		s.notReady(c, fmt.Errorf("database not configured"))
		return
	}
	if err := s.db.Ping(ctx, readpref.Primary()); err != nil {
		s.notReady(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}

func (s *Server) notReady(c *gin.Context, err error) {
	s.logger.Warn("readiness check failed", slog.Any("error", err))
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":     "not_ready",
		"components": gin.H{"database": "error"},
	})
}
