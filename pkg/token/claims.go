package token

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Claims is the app-facing token payload. Email is the subject identity used
// by the role and self checks downstream.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IsExpired reports whether the token's validity window has passed.
func (c *Claims) IsExpired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return time.Now().After(c.ExpiresAt.Time)
}
