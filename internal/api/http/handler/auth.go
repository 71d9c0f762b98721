package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/pkg/token"
)

type AuthHandler struct {
	tokens *token.Manager
}

func NewAuthHandler(tokens *token.Manager) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// POST /jwt
//
// Signs the caller-supplied claims object with the fixed expiry window.
// The body must include an email; everything else is passed through opaque.
func (h *AuthHandler) IssueToken(c fiber.Ctx) error {
	var claims map[string]any
	if err := c.Bind().JSON(&claims); err != nil {
		return badRequest(c, "invalid request body")
	}

	signed, err := h.tokens.Issue(claims)
	if err != nil {
		var ic token.ErrInvalidClaims
		if errors.As(err, &ic) {
			return badRequest(c, ic.Error())
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"token": signed})
}
