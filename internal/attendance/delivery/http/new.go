package http

import (
	"workspace-admin/internal/attendance"
	pkgLog "workspace-admin/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc attendance.UseCase
}

// New creates a new HTTP handler for the attendance domain.
func New(l pkgLog.Logger, uc attendance.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
