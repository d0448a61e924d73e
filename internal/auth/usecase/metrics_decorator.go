package usecase

import (
	"context"
	"time"

	authDomain "github.com/sijosaji/kitchensink/internal/auth/domain"
	"github.com/sijosaji/kitchensink/internal/metrics"
)

// authorizationGateWithMetrics decorates AuthorizationGate with metrics instrumentation.
type authorizationGateWithMetrics struct {
	next    AuthorizationGate
	metrics metrics.BusinessMetrics
}

// NewAuthorizationGateWithMetrics wraps an AuthorizationGate with metrics recording.
func NewAuthorizationGateWithMetrics(gate AuthorizationGate, m metrics.BusinessMetrics) AuthorizationGate {
	return &authorizationGateWithMetrics{
		next:    gate,
		metrics: m,
	}
}

// Authorize records metrics for authorization round trips.
func (a *authorizationGateWithMetrics) Authorize(
	ctx context.Context,
	authorizationHeader string,
	capabilities authDomain.Capabilities,
) error {
	start := time.Now()
	err := a.next.Authorize(ctx, authorizationHeader, capabilities)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "gateway", "authorize", status)
	a.metrics.RecordDuration(ctx, "gateway", "authorize", time.Since(start), status)

	return err
}

// rateLimitGateWithMetrics decorates RateLimitGate with metrics instrumentation.
type rateLimitGateWithMetrics struct {
	next    RateLimitGate
	metrics metrics.BusinessMetrics
}

// NewRateLimitGateWithMetrics wraps a RateLimitGate with duration recording.
// Outcome counts are recorded by the gate itself.
func NewRateLimitGateWithMetrics(gate RateLimitGate, m metrics.BusinessMetrics) RateLimitGate {
	return &rateLimitGateWithMetrics{
		next:    gate,
		metrics: m,
	}
}

// Enforce records the duration of rate-limit checks.
func (r *rateLimitGateWithMetrics) Enforce(ctx context.Context) error {
	start := time.Now()
	err := r.next.Enforce(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordDuration(ctx, "gateway", "rate_limit", time.Since(start), status)

	return err
}
