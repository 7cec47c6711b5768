package user

import "errors"

var (
	ErrInvalidID     = errors.New("invalid user id")
	ErrMissingFields = errors.New("name, email and password are required")
	ErrInvalidStatus = errors.New("invalid user status")
)
