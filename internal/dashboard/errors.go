package dashboard

import "errors"

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrDateOrder        = errors.New("from date must not be after to date")
	ErrInvalidGroupBy   = errors.New("group_by must be day or month")
	ErrInvalidWorkspace = errors.New("invalid workspace id")
)
