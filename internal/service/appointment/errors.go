package appointment

import "errors"

var (
	ErrMissingFields = errors.New("name, email, date and time are required")
)
