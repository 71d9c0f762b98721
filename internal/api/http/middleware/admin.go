package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/internal/service/user"
	"github.com/doctorshouse/backend/pkg/token"
)

// AdminRequired checks that the authenticated subject's stored role is admin.
// Must be stacked after TokenRequired, since it reads the decoded claims.
// An unknown email and a non-admin role both map to 403; only a storage
// failure during the lookup is 500.
func AdminRequired(svc user.Service) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := token.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		u, err := svc.GetByEmail(c.Context(), claims.Email)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return fiber.ErrForbidden
			}
			return fiber.ErrInternalServerError
		}

		if !u.IsAdmin() {
			return fiber.ErrForbidden
		}

		return c.Next()
	}
}
