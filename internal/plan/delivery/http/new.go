package http

import (
	"workspace-admin/internal/plan"
	pkgLog "workspace-admin/pkg/log"
)

type handler struct {
	l        pkgLog.Logger
	uc       plan.UseCase
	currency string
}

// New creates a new HTTP handler for the plan domain.
func New(l pkgLog.Logger, uc plan.UseCase, currency string) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		currency: currency,
	}
}
