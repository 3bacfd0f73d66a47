package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skycast-io/skycast/pkg/security/revocation"
)

// ClaimsKey is the fiber.Ctx Locals key the verified claims are stored under.
const ClaimsKey = "claims"

// NewAuthMiddleware returns a Fiber middleware that validates the bearer JWT
// from the Authorization header. On success the verified *Claims are set into
// c.Locals(ClaimsKey). Failures short-circuit the handler chain:
// missing header -> 404, unparsable bearer value -> 400, bad signature or
// expired or revoked -> 401. Failures are never retried here.
func NewAuthMiddleware(gen *Generator, denylist revocation.Denylist) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Token not found"})
		}

		// Expect "Bearer <token>"; anything else is an unauthorized shape.
		_, tokenStr, found := strings.Cut(authHeader, " ")
		if !found || strings.TrimSpace(tokenStr) == "" {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Token was not authorized"})
		}

		claims, err := gen.Parse(strings.TrimSpace(tokenStr))
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid Token"})
		}
		if revoked, err := denylist.IsRevoked(c.Context(), claims.ID); err == nil && revoked {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid Token"})
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}
