package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/medshare/internal/config"
	"github.com/example/medshare/internal/utils"
)

const claimsContextKey = "sessionClaims"

// AuthMiddleware validates bearer tokens and loads the session claims into
// context. A missing header is unauthenticated (401); a present but invalid
// or expired token is forbidden (403), matching the API contract.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header required")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusForbidden, "Invalid or expired token")
		}

		claims, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Invalid or expired token")
		}

		c.Locals(claimsContextKey, claims)
		return c.Next()
	}
}

// CurrentClaims extracts the session claims placed by AuthMiddleware.
func CurrentClaims(c *fiber.Ctx) (*utils.Claims, bool) {
	claims, ok := c.Locals(claimsContextKey).(*utils.Claims)
	return claims, ok
}
