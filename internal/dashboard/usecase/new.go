package usecase

import (
	"workspace-admin/internal/dashboard"
	"workspace-admin/internal/dashboard/repository"
	"workspace-admin/pkg/datemath"
	pkgLog "workspace-admin/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	cal  *datemath.Calendar
}

// New creates a new dashboard UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, cal *datemath.Calendar) dashboard.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		cal:  cal,
	}
}
