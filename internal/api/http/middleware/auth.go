package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/pkg/token"
)

// TokenRequired validates a Bearer JWT access token.
// On success, stores *token.Claims in c.Locals(token.CtxKeyClaims).
// Every failure is 401; the response never reveals whether the subject's
// email is registered.
func TokenRequired(mgr *token.Manager) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(token.CtxKeyClaims, claims)
		return c.Next()
	}
}
