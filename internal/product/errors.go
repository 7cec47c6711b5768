package product

import "errors"

var (
	ErrInvalidID         = errors.New("invalid product id")
	ErrMissingName       = errors.New("product name is required")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrInvalidStock      = errors.New("stock must not be negative")
	ErrInvalidQuantity   = errors.New("quantity must be at least one")
	ErrInvalidUser       = errors.New("a user is required")
	ErrInvalidSubscriber = errors.New("a subscriber is required")
)
