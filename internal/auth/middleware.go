package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mangostorage/inventory-service/internal/domain"
	apperrors "github.com/mangostorage/inventory-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Username string
	Position domain.Position
	Claims   *Claims
}

// AuthMiddleware validates bearer tokens on protected routes.
type AuthMiddleware struct {
	tokens *TokenService
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, ok := BearerToken(c)
	if !ok {
		return UnauthorizedError(&VerificationError{Reason: ReasonMissing})
	}

	claims, err := m.tokens.Verify(c.UserContext(), token)
	if err != nil {
		return UnauthorizedError(err)
	}

	c.Locals(principalKey, &Principal{
		Username: claims.Username,
		Position: claims.Position,
		Claims:   claims,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// UnauthorizedError maps a verification failure to the error taxonomy,
// carrying the failure reason for the caller.
func UnauthorizedError(err error) error {
	reason := ReasonMalformed
	var verr *VerificationError
	if errors.As(err, &verr) {
		reason = verr.Reason
	}
	return apperrors.NewDomainError(
		"UNAUTHORIZED",
		"token verification failed",
		fiber.StatusUnauthorized,
		map[string]any{"reason": string(reason)},
	)
}
