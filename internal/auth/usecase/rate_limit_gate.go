package usecase

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	authDomain "github.com/sijosaji/kitchensink/internal/auth/domain"
	"github.com/sijosaji/kitchensink/internal/auth/identity"
	authService "github.com/sijosaji/kitchensink/internal/auth/service"
	apperrors "github.com/sijosaji/kitchensink/internal/errors"
	"github.com/sijosaji/kitchensink/internal/metrics"
)

type rateLimitGate struct {
	rateLimitClient authService.RateLimitClient
	metrics         metrics.BusinessMetrics
	logger          *slog.Logger

	// faultLogLimiter throttles the fail-open warning while the rate-limit service is down.
	faultLogLimiter *rate.Limiter
	suppressed      atomic.Int64
}

// NewRateLimitGate creates a RateLimitGate.
// faultLogInterval is the minimum spacing between fail-open warnings; zero logs every fault.
func NewRateLimitGate(
	rateLimitClient authService.RateLimitClient,
	businessMetrics metrics.BusinessMetrics,
	faultLogInterval time.Duration,
	logger *slog.Logger,
) RateLimitGate {
	limit := rate.Inf
	if faultLogInterval > 0 {
		limit = rate.Every(faultLogInterval)
	}

	return &rateLimitGate{
		rateLimitClient: rateLimitClient,
		metrics:         businessMetrics,
		logger:          logger,
		faultLogLimiter: rate.NewLimiter(limit, 1),
	}
}

// Enforce consumes quota for the identity in the slot, then clears it.
func (g *rateLimitGate) Enforce(ctx context.Context) error {
	slot, ok := identity.FromContext(ctx)
	if !ok {
		g.record(ctx, authDomain.RateLimitSkipped)
		return nil
	}
	defer slot.Clear()

	userID, ok := slot.Get()
	if !ok {
		g.record(ctx, authDomain.RateLimitSkipped)
		return nil
	}

	err := g.rateLimitClient.Consume(ctx, userID)
	if err == nil {
		g.record(ctx, authDomain.RateLimitAllowed)
		return nil
	}

	var upstreamErr *apperrors.UpstreamError
	if apperrors.As(err, &upstreamErr) && upstreamErr.ServerFault() {
		g.logFault(userID, upstreamErr)
		g.record(ctx, authDomain.RateLimitFailOpen)
		return nil
	}

	g.record(ctx, authDomain.RateLimitBlocked)
	return err
}

func (g *rateLimitGate) logFault(userID string, upstreamErr *apperrors.UpstreamError) {
	if !g.faultLogLimiter.Allow() {
		g.suppressed.Add(1)
		return
	}

	g.logger.Warn("rate limit service failed, allowing request",
		slog.String("user_id", userID),
		slog.Int("status_code", upstreamErr.StatusCode),
		slog.Int64("suppressed", g.suppressed.Swap(0)))
}

func (g *rateLimitGate) record(ctx context.Context, outcome authDomain.RateLimitOutcome) {
	g.metrics.RecordOperation(ctx, "gateway", "rate_limit", string(outcome))
}
