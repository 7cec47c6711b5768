package booking

import "errors"

var (
	ErrInvalidID        = errors.New("invalid booking id")
	ErrInvalidWorkspace = errors.New("workspace is required")
	ErrInvalidUser      = errors.New("user is required")
	ErrInvalidStatus    = errors.New("status must be pending, confirmed or cancelled")
	ErrInvalidTime      = errors.New("invalid booking time")
	ErrTimeOrder        = errors.New("end time must be after start time")
	ErrInvalidAmount    = errors.New("deposit and total price must not be negative")
	ErrNotOwner         = errors.New("booking belongs to another user")
	ErrUnavailable      = errors.New("time slot is not available")
)

// UnavailableError carries the remote explanation of a refused slot.
type UnavailableError struct {
	Message string
}

func (e *UnavailableError) Error() string {
	if e.Message == "" {
		return ErrUnavailable.Error()
	}
	return ErrUnavailable.Error() + ": " + e.Message
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}
