// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"

	authService "github.com/sijosaji/kitchensink/internal/auth/service"
	authUseCase "github.com/sijosaji/kitchensink/internal/auth/usecase"
	"github.com/sijosaji/kitchensink/internal/config"
	"github.com/sijosaji/kitchensink/internal/database"
	kitchensinkHTTP "github.com/sijosaji/kitchensink/internal/http"
	memberHTTP "github.com/sijosaji/kitchensink/internal/member/http"
	memberUseCase "github.com/sijosaji/kitchensink/internal/member/usecase"
	"github.com/sijosaji/kitchensink/internal/metrics"
	sequenceUseCase "github.com/sijosaji/kitchensink/internal/sequence/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	mongoClient     *mongo.Client
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	gatewayClient   *http.Client

	// Gateway
	authClient        authService.AuthClient
	rateLimitClient   authService.RateLimitClient
	authorizationGate authUseCase.AuthorizationGate
	rateLimitGate     authUseCase.RateLimitGate

	// Members
	sequenceUseCase sequenceUseCase.UseCase
	memberRepo      memberUseCase.MemberRepository
	memberUseCase   memberUseCase.MemberUseCase
	memberHandler   *memberHTTP.MemberHandler

	// Servers
	httpServer    *kitchensinkHTTP.Server
	metricsServer *kitchensinkHTTP.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                    sync.Mutex
	loggerInit            sync.Once
	mongoClientInit       sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	gatewayClientInit     sync.Once
	authClientInit        sync.Once
	rateLimitClientInit   sync.Once
	authorizationGateInit sync.Once
	rateLimitGateInit     sync.Once
	sequenceUseCaseInit   sync.Once
	memberRepoInit        sync.Once
	memberUseCaseInit     sync.Once
	memberHandlerInit     sync.Once
	httpServerInit        sync.Once
	metricsServerInit     sync.Once
	initErrors            map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MongoClient returns the connected MongoDB client.
func (c *Container) MongoClient() (*mongo.Client, error) {
	var err error
	c.mongoClientInit.Do(func() {
		c.mongoClient, err = c.initMongoClient()
		if err != nil {
			c.initErrors["mongoClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["mongoClient"]; exists {
		return nil, storedErr
	}
	return c.mongoClient, nil
}

// MongoDatabase returns the configured application database.
func (c *Container) MongoDatabase() (*mongo.Database, error) {
	client, err := c.MongoClient()
	if err != nil {
		return nil, err
	}
	return client.Database(c.config.MongoDBDatabase), nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// A no-op recorder is returned when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the HTTP server instance with its router configured.
func (c *Container) HTTPServer() (*kitchensinkHTTP.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*kitchensinkHTTP.MetricsServer, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// Servers are stopped by their owner; the container releases what it created.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.gatewayClient != nil {
		c.gatewayClient.CloseIdleConnections()
	}

	if c.mongoClient != nil {
		if err := c.mongoClient.Disconnect(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("mongodb disconnect: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initMongoClient connects to MongoDB and verifies the primary is reachable.
func (c *Container) initMongoClient() (*mongo.Client, error) {
	client, err := database.Connect(context.Background(), database.Config{
		URI:            c.config.MongoDBURI,
		Database:       c.config.MongoDBDatabase,
		ConnectTimeout: c.config.MongoDBConnectTimeout,
		MaxPoolSize:    c.config.MongoDBMaxPoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	return client, nil
}

// initBusinessMetrics creates the business metrics recorder on the metrics provider.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}
	return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}

// initHTTPServer creates the HTTP server and wires every route.
func (c *Container) initHTTPServer() (*kitchensinkHTTP.Server, error) {
	logger := c.Logger()

	mongoClient, err := c.MongoClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get mongodb client for http server: %w", err)
	}

	memberHandler, err := c.MemberHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get member handler for http server: %w", err)
	}

	authorizationGate, err := c.AuthorizationGate()
	if err != nil {
		return nil, fmt.Errorf("failed to get authorization gate for http server: %w", err)
	}

	rateLimitGate, err := c.RateLimitGate()
	if err != nil {
		return nil, fmt.Errorf("failed to get rate limit gate for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := kitchensinkHTTP.NewServer(mongoClient, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(
		c.config,
		memberHandler,
		authorizationGate,
		rateLimitGate,
		metricsProvider,
		c.config.MetricsNamespace,
	)

	return server, nil
}

// initMetricsServer creates the metrics server on its own port.
func (c *Container) initMetricsServer() (*kitchensinkHTTP.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	return kitchensinkHTTP.NewMetricsServer(
		c.config.ServerHost,
		c.config.MetricsPort,
		c.Logger(),
		provider,
	), nil
}
