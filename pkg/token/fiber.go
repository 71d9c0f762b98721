package token

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/config"
)

const CtxKeyClaims = "auth.claims"

// ClaimsFromFiber retrieves the decoded claims stored by the auth middleware.
func ClaimsFromFiber(c fiber.Ctx) (*Claims, bool) {
	v := c.Locals(CtxKeyClaims)
	if v == nil {
		return nil, false
	}
	cl, ok := v.(*Claims)
	return cl, ok
}

// NewManagerFromConfig creates a token manager from central config.
func NewManagerFromConfig(cfg *config.Config) (*Manager, error) {
	return New(Config{
		Secret: cfg.Auth.JWTSecret,
		TTL:    time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
		Issuer: cfg.Auth.Issuer,
	})
}
