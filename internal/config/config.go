// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ShutdownTimeout bounds graceful shutdown of the HTTP servers.
	ShutdownTimeout time.Duration

	// MongoDBURI is the MongoDB connection string.
	MongoDBURI string
	// MongoDBDatabase is the database holding members and sequence counters.
	MongoDBDatabase string
	// MongoDBConnectTimeout bounds the initial connect and ping.
	MongoDBConnectTimeout time.Duration
	// MongoDBMaxPoolSize is the maximum number of pooled connections.
	MongoDBMaxPoolSize uint64

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// AuthServiceURL is the endpoint that validates bearer credentials.
	AuthServiceURL string
	// RateLimitServiceURL is the base endpoint; the caller identity is appended as a path segment.
	RateLimitServiceURL string
	// GatewayHTTPTimeout is the timeout of every outbound call made by the gates.
	GatewayHTTPTimeout time.Duration
	// RateLimitFaultLogInterval is the minimum spacing between fail-open warnings.
	RateLimitFaultLogInterval time.Duration

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 30, time.Second),

		// MongoDB configuration
		MongoDBURI:            env.GetString("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBDatabase:       env.GetString("MONGODB_DATABASE", "kitchensink"),
		MongoDBConnectTimeout: env.GetDuration("MONGODB_CONNECT_TIMEOUT_SECONDS", 10, time.Second),
		MongoDBMaxPoolSize:    uint64(env.GetInt("MONGODB_MAX_POOL_SIZE", 100)),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Gateway services
		AuthServiceURL:            env.GetString("AUTH_SERVICE_URL", "http://localhost:9000/auth/validate"),
		RateLimitServiceURL:       env.GetString("RATE_LIMIT_SERVICE_URL", "http://localhost:9001/rate-limit"),
		GatewayHTTPTimeout:        env.GetDuration("GATEWAY_HTTP_TIMEOUT_SECONDS", 5, time.Second),
		RateLimitFaultLogInterval: env.GetDuration("RATE_LIMIT_FAULT_LOG_INTERVAL_SECONDS", 10, time.Second),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "kitchensink"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if strings.EqualFold(c.LogLevel, "debug") {
		return "debug"
	}
	return "release"
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
