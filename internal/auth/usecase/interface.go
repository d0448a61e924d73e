// Package usecase implements the request gates that run before every member operation.
package usecase

import (
	"context"

	authDomain "github.com/sijosaji/kitchensink/internal/auth/domain"
)

// AuthorizationGate resolves the caller identity for a request.
type AuthorizationGate interface {
	// Authorize validates the Authorization header against the required capabilities and,
	// on success, writes the returned identity into the request's identity slot.
	// Missing or malformed headers fail with ErrUnauthorized without any network call.
	Authorize(ctx context.Context, authorizationHeader string, capabilities authDomain.Capabilities) error
}

// RateLimitGate consumes quota for the identity resolved by AuthorizationGate.
type RateLimitGate interface {
	// Enforce calls the rate-limit service for the current identity.
	// The identity slot is always empty when Enforce returns.
	Enforce(ctx context.Context) error
}
