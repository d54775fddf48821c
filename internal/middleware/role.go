package middleware

import "github.com/gofiber/fiber/v2"

// RequireProfessional rejects sessions without the professional role claim.
// The gate looks at the token only; the user table's userType field plays no
// part in the decision.
func RequireProfessional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := CurrentClaims(c)
		if !ok || !claims.IsProfessional() {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden")
		}
		return c.Next()
	}
}
