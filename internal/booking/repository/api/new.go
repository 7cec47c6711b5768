package api

import (
	"workspace-admin/internal/booking/repository"
	"workspace-admin/pkg/backend"
	pkgLog "workspace-admin/pkg/log"
)

type implRepository struct {
	client *backend.Client
	l      pkgLog.Logger
}

// New creates the /bookings facade over client.
func New(client *backend.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
