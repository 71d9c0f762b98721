package doctor

import "errors"

var (
	ErrNotFound     = errors.New("doctor not found")
	ErrInvalidID    = errors.New("invalid doctor id")
	ErrNameRequired = errors.New("doctor name is required")
	ErrNoFields     = errors.New("no fields to update")
)
