package plan

import "errors"

var (
	ErrInvalidID       = errors.New("invalid plan id")
	ErrPlanNotFound    = errors.New("plan not found")
	ErrMissingName     = errors.New("plan name is required")
	ErrInvalidDuration = errors.New("duration must be at least one day")
	ErrInvalidPrice    = errors.New("price must not be negative")
)
