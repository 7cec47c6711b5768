package subscriber

import "errors"

var (
	ErrInvalidID     = errors.New("invalid subscriber id")
	ErrInvalidUser   = errors.New("a user is required")
	ErrInvalidPlan   = errors.New("a plan is required")
	ErrInvalidStatus = errors.New("status must be active, expired or suspended")
	ErrInvalidDate   = errors.New("invalid date")
	ErrDateOrder     = errors.New("end date must not be before start date")
)
