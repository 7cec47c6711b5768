package http

import (
	"workspace-admin/internal/transaction"
	pkgLog "workspace-admin/pkg/log"
)

type handler struct {
	l        pkgLog.Logger
	uc       transaction.UseCase
	currency string
}

// New creates a new HTTP handler for the transaction domain.
func New(l pkgLog.Logger, uc transaction.UseCase, currency string) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		currency: currency,
	}
}
