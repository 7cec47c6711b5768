package http

import (
	"workspace-admin/internal/booking"
	pkgLog "workspace-admin/pkg/log"
)

type handler struct {
	l        pkgLog.Logger
	uc       booking.UseCase
	currency string
}

// New creates a new HTTP handler for the booking domain.
func New(l pkgLog.Logger, uc booking.UseCase, currency string) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		currency: currency,
	}
}
