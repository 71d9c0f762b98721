package token

import "fmt"

type ErrConfig struct{ Msg string }

func (e ErrConfig) Error() string { return "token config error: " + e.Msg }

type ErrInvalidToken struct{ Err error }

func (e ErrInvalidToken) Error() string { return fmt.Sprintf("invalid token: %v", e.Err) }
func (e ErrInvalidToken) Unwrap() error { return e.Err }

type ErrInvalidClaims struct{ Reason string }

func (e ErrInvalidClaims) Error() string { return "invalid claims: " + e.Reason }
