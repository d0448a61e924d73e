// Package mocks provides mock implementations of the gate service clients for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/sijosaji/kitchensink/internal/auth/domain"
)

// MockAuthClient is a mock implementation of AuthClient for testing.
type MockAuthClient struct {
	mock.Mock
}

// Validate mocks the Validate method of AuthClient.
func (m *MockAuthClient) Validate(
	ctx context.Context,
	accessToken string,
	capabilities authDomain.Capabilities,
) (*authDomain.AuthorizationDecision, error) {
	args := m.Called(ctx, accessToken, capabilities)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.AuthorizationDecision), args.Error(1)
}

// MockRateLimitClient is a mock implementation of RateLimitClient for testing.
type MockRateLimitClient struct {
	mock.Mock
}

// Consume mocks the Consume method of RateLimitClient.
func (m *MockRateLimitClient) Consume(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
