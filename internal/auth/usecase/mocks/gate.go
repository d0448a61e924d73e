// Package mocks provides mock implementations of the request gates for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/sijosaji/kitchensink/internal/auth/domain"
)

// MockAuthorizationGate is a mock implementation of AuthorizationGate for testing.
type MockAuthorizationGate struct {
	mock.Mock
}

// Authorize mocks the Authorize method of AuthorizationGate.
func (m *MockAuthorizationGate) Authorize(
	ctx context.Context,
	authorizationHeader string,
	capabilities authDomain.Capabilities,
) error {
	args := m.Called(ctx, authorizationHeader, capabilities)
	return args.Error(0)
}

// MockRateLimitGate is a mock implementation of RateLimitGate for testing.
type MockRateLimitGate struct {
	mock.Mock
}

// Enforce mocks the Enforce method of RateLimitGate.
func (m *MockRateLimitGate) Enforce(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
