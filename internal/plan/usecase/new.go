package usecase

import (
	"workspace-admin/internal/plan"
	"workspace-admin/internal/plan/repository"
	pkgLog "workspace-admin/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new plan UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) plan.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
