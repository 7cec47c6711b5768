package attendance

import "errors"

var (
	ErrInvalidEmployee = errors.New("invalid employee id")
	ErrInvalidTime     = errors.New("invalid check time")
	ErrInvalidDate     = errors.New("invalid date")
	ErrDateOrder       = errors.New("from date must not be after to date")
	ErrNotSelf         = errors.New("only admins can check in other employees")
)
