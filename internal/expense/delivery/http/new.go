package http

import (
	"workspace-admin/internal/expense"
	pkgLog "workspace-admin/pkg/log"
)

type handler struct {
	l        pkgLog.Logger
	uc       expense.UseCase
	currency string
}

// New creates a new HTTP handler for the expense domain.
func New(l pkgLog.Logger, uc expense.UseCase, currency string) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		currency: currency,
	}
}
