package auth

import "errors"

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidResetToken  = errors.New("invalid reset token")
	ErrNoToken            = errors.New("backend returned no token")
)
