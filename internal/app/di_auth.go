package app

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/metric"

	authService "github.com/sijosaji/kitchensink/internal/auth/service"
	authUseCase "github.com/sijosaji/kitchensink/internal/auth/usecase"
)

// GatewayHTTPClient returns the shared client used for calls to the auth and rate-limit services.
func (c *Container) GatewayHTTPClient() (*http.Client, error) {
	var err error
	c.gatewayClientInit.Do(func() {
		c.gatewayClient, err = c.initGatewayHTTPClient()
		if err != nil {
			c.initErrors["gatewayClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["gatewayClient"]; exists {
		return nil, storedErr
	}
	return c.gatewayClient, nil
}

// AuthClient returns the client for the external auth service.
func (c *Container) AuthClient() (authService.AuthClient, error) {
	var err error
	c.authClientInit.Do(func() {
		c.authClient, err = c.initAuthClient()
		if err != nil {
			c.initErrors["authClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authClient"]; exists {
		return nil, storedErr
	}
	return c.authClient, nil
}

// RateLimitClient returns the client for the external rate-limit service.
func (c *Container) RateLimitClient() (authService.RateLimitClient, error) {
	var err error
	c.rateLimitClientInit.Do(func() {
		c.rateLimitClient, err = c.initRateLimitClient()
		if err != nil {
			c.initErrors["rateLimitClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["rateLimitClient"]; exists {
		return nil, storedErr
	}
	return c.rateLimitClient, nil
}

// AuthorizationGate returns the authorization gate.
func (c *Container) AuthorizationGate() (authUseCase.AuthorizationGate, error) {
	var err error
	c.authorizationGateInit.Do(func() {
		c.authorizationGate, err = c.initAuthorizationGate()
		if err != nil {
			c.initErrors["authorizationGate"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authorizationGate"]; exists {
		return nil, storedErr
	}
	return c.authorizationGate, nil
}

// RateLimitGate returns the rate-limit gate.
func (c *Container) RateLimitGate() (authUseCase.RateLimitGate, error) {
	var err error
	c.rateLimitGateInit.Do(func() {
		c.rateLimitGate, err = c.initRateLimitGate()
		if err != nil {
			c.initErrors["rateLimitGate"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["rateLimitGate"]; exists {
		return nil, storedErr
	}
	return c.rateLimitGate, nil
}

// initGatewayHTTPClient creates the outbound client, instrumented when metrics are enabled.
func (c *Container) initGatewayHTTPClient() (*http.Client, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for gateway client: %w", err)
	}

	var meterProvider metric.MeterProvider
	if provider != nil {
		meterProvider = provider.MeterProvider()
	}

	return authService.NewHTTPClient(c.config.GatewayHTTPTimeout, meterProvider), nil
}

// initAuthClient creates the auth service client.
func (c *Container) initAuthClient() (authService.AuthClient, error) {
	httpClient, err := c.GatewayHTTPClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get http client for auth client: %w", err)
	}
	return authService.NewAuthClient(httpClient, c.config.AuthServiceURL), nil
}

// initRateLimitClient creates the rate-limit service client.
func (c *Container) initRateLimitClient() (authService.RateLimitClient, error) {
	httpClient, err := c.GatewayHTTPClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get http client for rate limit client: %w", err)
	}
	return authService.NewRateLimitClient(httpClient, c.config.RateLimitServiceURL), nil
}

// initAuthorizationGate creates the authorization gate, wrapped with metrics if enabled.
func (c *Container) initAuthorizationGate() (authUseCase.AuthorizationGate, error) {
	authClient, err := c.AuthClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client for authorization gate: %w", err)
	}

	baseGate := authUseCase.NewAuthorizationGate(authClient, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for authorization gate: %w", err)
		}
		return authUseCase.NewAuthorizationGateWithMetrics(baseGate, businessMetrics), nil
	}

	return baseGate, nil
}

// initRateLimitGate creates the rate-limit gate, wrapped with metrics if enabled.
// The gate records its outcome itself, so it always receives a recorder.
func (c *Container) initRateLimitGate() (authUseCase.RateLimitGate, error) {
	rateLimitClient, err := c.RateLimitClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get rate limit client for rate limit gate: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for rate limit gate: %w", err)
	}

	baseGate := authUseCase.NewRateLimitGate(
		rateLimitClient,
		businessMetrics,
		c.config.RateLimitFaultLogInterval,
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		return authUseCase.NewRateLimitGateWithMetrics(baseGate, businessMetrics), nil
	}

	return baseGate, nil
}
