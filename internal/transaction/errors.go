package transaction

import "errors"

var (
	ErrInvalidID      = errors.New("invalid transaction id")
	ErrInvalidUser    = errors.New("user is required")
	ErrInvalidType    = errors.New("type must be payment or withdrawal")
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrInvalidDate    = errors.New("invalid date")
	ErrDateOrder      = errors.New("from date must not be after to date")
	ErrInvalidGroupBy = errors.New("group_by must be day or month")
)
