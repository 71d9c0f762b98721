package user

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrInvalidID     = errors.New("invalid user id")
	ErrEmailRequired = errors.New("email is required")
)
