package usecase

import (
	"workspace-admin/internal/attendance"
	"workspace-admin/internal/attendance/repository"
	"workspace-admin/pkg/datemath"
	pkgLog "workspace-admin/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	cal  *datemath.Calendar
}

// New creates a new attendance UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, cal *datemath.Calendar) attendance.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		cal:  cal,
	}
}
