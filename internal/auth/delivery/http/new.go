package http

import (
	"workspace-admin/internal/auth"
	"workspace-admin/internal/middleware"
	"workspace-admin/pkg/log"
)

type handler struct {
	l  log.Logger
	uc auth.UseCase
	mw middleware.Middleware
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, mw middleware.Middleware) *handler {
	return &handler{
		l:  l,
		uc: uc,
		mw: mw,
	}
}
