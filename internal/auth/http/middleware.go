// Package http provides the gin middleware that runs the request gates.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/sijosaji/kitchensink/internal/auth/domain"
	"github.com/sijosaji/kitchensink/internal/auth/identity"
	authUseCase "github.com/sijosaji/kitchensink/internal/auth/usecase"
	"github.com/sijosaji/kitchensink/internal/httputil"
)

// IdentityScopeMiddleware gives each request its own empty identity slot.
//
// The slot is attached to the request's context.Context, never to shared state, and is
// cleared again once the rest of the chain has run.
func IdentityScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, slot := identity.NewContext(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		defer slot.Clear()

		c.Next()
	}
}

// AuthorizationMiddleware runs the AuthorizationGate for a fixed capability set.
//
// MUST be used after IdentityScopeMiddleware. The Authorization header is handed to the
// gate as-is; a missing or malformed header fails with 401 before any network call.
//
// Usage:
//
//	router.GET("/members",
//	    IdentityScopeMiddleware(),
//	    AuthorizationMiddleware(gate, authDomain.Require(authDomain.MembersReadCapability), logger),
//	    RateLimitMiddleware(rateLimitGate, logger),
//	    handler)
func AuthorizationMiddleware(
	gate authUseCase.AuthorizationGate,
	capabilities authDomain.Capabilities,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gate.Authorize(c.Request.Context(), c.GetHeader("Authorization"), capabilities); err != nil {
			httputil.HandleErrorGin(c, err, logger)
			return
		}

		c.Next()
	}
}

// RateLimitMiddleware runs the RateLimitGate for the identity resolved by authorization.
//
// Server faults from the rate-limit service are let through by the gate; every other
// failure aborts the request through the error translator.
func RateLimitMiddleware(gate authUseCase.RateLimitGate, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gate.Enforce(c.Request.Context()); err != nil {
			httputil.HandleErrorGin(c, err, logger)
			return
		}

		c.Next()
	}
}

// Gates composes the full gate chain for one protected route in its fixed order:
// identity scope, authorization, rate limit.
func Gates(
	authorizationGate authUseCase.AuthorizationGate,
	rateLimitGate authUseCase.RateLimitGate,
	capabilities authDomain.Capabilities,
	logger *slog.Logger,
) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		IdentityScopeMiddleware(),
		AuthorizationMiddleware(authorizationGate, capabilities, logger),
		RateLimitMiddleware(rateLimitGate, logger),
	}
}
