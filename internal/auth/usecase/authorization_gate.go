package usecase

import (
	"context"
	"log/slog"
	"strings"

	authDomain "github.com/sijosaji/kitchensink/internal/auth/domain"
	"github.com/sijosaji/kitchensink/internal/auth/identity"
	authService "github.com/sijosaji/kitchensink/internal/auth/service"
	apperrors "github.com/sijosaji/kitchensink/internal/errors"
)

const bearerPrefix = "bearer "

// ErrIdentityScopeMissing is returned when a gate runs outside an identity scope.
var ErrIdentityScopeMissing = apperrors.New("request identity scope is missing")

type authorizationGate struct {
	authClient authService.AuthClient
	logger     *slog.Logger
}

// NewAuthorizationGate creates an AuthorizationGate backed by the auth service client.
func NewAuthorizationGate(authClient authService.AuthClient, logger *slog.Logger) AuthorizationGate {
	return &authorizationGate{
		authClient: authClient,
		logger:     logger,
	}
}

// Authorize performs one auth-service round trip and fills the identity slot.
func (g *authorizationGate) Authorize(
	ctx context.Context,
	authorizationHeader string,
	capabilities authDomain.Capabilities,
) error {
	accessToken, ok := ParseBearerToken(authorizationHeader)
	if !ok {
		g.logger.Debug("authorization failed: missing or malformed bearer credential")
		return apperrors.ErrUnauthorized
	}

	slot, ok := identity.FromContext(ctx)
	if !ok {
		return ErrIdentityScopeMissing
	}

	decision, err := g.authClient.Validate(ctx, accessToken, capabilities)
	if err != nil {
		g.logger.Debug("authorization failed",
			slog.String("capabilities", capabilities.String()),
			slog.Any("error", err))
		return err
	}

	slot.Set(decision.UserID)

	g.logger.Debug("authorization successful",
		slog.String("user_id", decision.UserID),
		slog.String("capabilities", capabilities.String()))

	return nil
}

// ParseBearerToken extracts the credential from an "Authorization: Bearer <token>" value.
// The scheme is matched case-insensitively and the token must be non-empty.
func ParseBearerToken(authorizationHeader string) (string, bool) {
	if len(authorizationHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authorizationHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(authorizationHeader[len(bearerPrefix):])
	if token == "" {
		return "", false
	}

	return token, true
}
