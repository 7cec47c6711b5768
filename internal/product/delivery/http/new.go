package http

import (
	"workspace-admin/internal/product"
	pkgLog "workspace-admin/pkg/log"
)

type handler struct {
	l        pkgLog.Logger
	uc       product.UseCase
	currency string
}

// New creates a new HTTP handler for the product domain.
func New(l pkgLog.Logger, uc product.UseCase, currency string) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		currency: currency,
	}
}
