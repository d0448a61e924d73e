// Package service provides the outbound clients used by the request gates.
//
// Both the auth-validation service and the rate-limit service are reached over plain
// HTTP. Clients make exactly one round trip per call and never retry; non-success
// responses are returned as *errors.UpstreamError so the error translator can classify
// them by status.
package service

import (
	"context"

	authDomain "github.com/sijosaji/kitchensink/internal/auth/domain"
)

// AuthClient validates a bearer credential against a required capability set.
type AuthClient interface {
	// Validate posts the credential and capabilities to the auth service.
	// Returns the decision on a 2xx response and *errors.UpstreamError otherwise.
	Validate(
		ctx context.Context,
		accessToken string,
		capabilities authDomain.Capabilities,
	) (*authDomain.AuthorizationDecision, error)
}

// RateLimitClient consumes one unit of the caller's quota.
type RateLimitClient interface {
	// Consume issues a bodiless PUT to {base}/{userID}.
	// Returns nil for any status below 400 and *errors.UpstreamError otherwise.
	Consume(ctx context.Context, userID string) error
}
