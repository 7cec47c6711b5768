package workspace

import "errors"

var (
	ErrInvalidID       = errors.New("invalid workspace id")
	ErrMissingFields   = errors.New("name and location are required")
	ErrInvalidCapacity = errors.New("capacity must be at least one")
)
