package usecase

import (
	"time"

	"workspace-admin/internal/auth"
	"workspace-admin/internal/auth/repository"
	"workspace-admin/internal/session"
	pkgLog "workspace-admin/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	sessions session.Store
	now      func() time.Time
}

// New creates a new auth UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, sessions session.Store) auth.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		sessions: sessions,
		now:      time.Now,
	}
}
