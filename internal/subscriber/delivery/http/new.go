package http

import (
	"workspace-admin/internal/subscriber"
	"workspace-admin/pkg/datemath"
	pkgLog "workspace-admin/pkg/log"
)

type handler struct {
	l        pkgLog.Logger
	uc       subscriber.UseCase
	cal      *datemath.Calendar
	currency string
}

// New creates a new HTTP handler for the subscriber domain.
func New(l pkgLog.Logger, uc subscriber.UseCase, cal *datemath.Calendar, currency string) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		cal:      cal,
		currency: currency,
	}
}
