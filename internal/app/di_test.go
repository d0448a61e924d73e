package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sijosaji/kitchensink/internal/config"
	"github.com/sijosaji/kitchensink/internal/metrics"
)

func gatewayConfig(metricsEnabled bool) *config.Config {
	return &config.Config{
		LogLevel:                  "info",
		ServerHost:                "localhost",
		ServerPort:                8080,
		AuthServiceURL:            "http://localhost:9000/auth/validate",
		RateLimitServiceURL:       "http://localhost:9001/rate-limit",
		GatewayHTTPTimeout:        time.Second,
		RateLimitFaultLogInterval: time.Second,
		MetricsEnabled:            metricsEnabled,
		MetricsNamespace:          "kitchensink_test",
		MetricsPort:               8081,
	}
}

func TestNewContainer(t *testing.T) {
	cfg := gatewayConfig(false)

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainerLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "invalid"} {
		t.Run(level, func(t *testing.T) {
			container := NewContainer(&config.Config{LogLevel: level})
			assert.Nil(t, container.logger)

			logger := container.Logger()

			require.NotNil(t, logger)
			assert.Same(t, logger, container.Logger())
		})
	}
}

func TestContainerMongoClient_InvalidURI(t *testing.T) {
	cfg := gatewayConfig(false)
	cfg.MongoDBURI = "invalid://localhost"
	cfg.MongoDBConnectTimeout = time.Second
	container := NewContainer(cfg)

	_, err := container.MongoClient()
	require.Error(t, err)

	_, err = container.MongoClient()
	assert.Error(t, err, "stored init error is returned again")

	_, err = container.HTTPServer()
	assert.Error(t, err)

	_, err = container.MemberUseCase()
	assert.Error(t, err)
}

func TestContainerMetrics_Disabled(t *testing.T) {
	container := NewContainer(gatewayConfig(false))

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.Nil(t, provider)

	businessMetrics, err := container.BusinessMetrics()
	require.NoError(t, err)
	assert.IsType(t, &metrics.NoOpBusinessMetrics{}, businessMetrics)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	assert.Nil(t, metricsServer)
}

func TestContainerMetrics_Enabled(t *testing.T) {
	container := NewContainer(gatewayConfig(true))

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	require.NotNil(t, provider)

	businessMetrics, err := container.BusinessMetrics()
	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	assert.NotNil(t, metricsServer)

	assert.NoError(t, container.Shutdown(context.Background()))
}

func TestContainerGates(t *testing.T) {
	for _, metricsEnabled := range []bool{false, true} {
		container := NewContainer(gatewayConfig(metricsEnabled))

		authorizationGate, err := container.AuthorizationGate()
		require.NoError(t, err)
		assert.NotNil(t, authorizationGate)

		rateLimitGate, err := container.RateLimitGate()
		require.NoError(t, err)
		assert.NotNil(t, rateLimitGate)

		again, err := container.RateLimitGate()
		require.NoError(t, err)
		assert.Same(t, rateLimitGate, again)

		httpClient, err := container.GatewayHTTPClient()
		require.NoError(t, err)
		assert.Equal(t, time.Second, httpClient.Timeout)

		assert.NoError(t, container.Shutdown(context.Background()))
	}
}

func TestContainerShutdown_NothingInitialized(t *testing.T) {
	container := NewContainer(gatewayConfig(false))

	assert.NoError(t, container.Shutdown(context.TODO()))
}
