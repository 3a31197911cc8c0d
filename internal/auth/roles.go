package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mangostorage/inventory-service/internal/domain"
)

// RequirePosition ensures the authenticated caller holds one of the allowed
// positions. With no arguments it only requires authentication.
func RequirePosition(allowed ...domain.Position) fiber.Handler {
	allowedSet := make(map[domain.Position]struct{}, len(allowed))
	for _, position := range allowed {
		allowedSet[position] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Position]; !exists {
			return fiber.NewError(http.StatusForbidden, "insufficient position")
		}
		return c.Next()
	}
}
