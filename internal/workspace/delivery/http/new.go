package http

import (
	"workspace-admin/internal/workspace"
	pkgLog "workspace-admin/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc workspace.UseCase
}

// New creates a new HTTP handler for the workspace domain.
func New(l pkgLog.Logger, uc workspace.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
