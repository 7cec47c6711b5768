package http

import (
	"workspace-admin/internal/dashboard"
	pkgLog "workspace-admin/pkg/log"
)

type handler struct {
	l        pkgLog.Logger
	uc       dashboard.UseCase
	currency string
}

// New creates a new HTTP handler for the dashboard and report pages.
func New(l pkgLog.Logger, uc dashboard.UseCase, currency string) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		currency: currency,
	}
}
