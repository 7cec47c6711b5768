package expense

import "errors"

var (
	ErrInvalidID     = errors.New("invalid expense id")
	ErrMissingName   = errors.New("expense name is required")
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)
