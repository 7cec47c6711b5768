package usecase

import (
	"workspace-admin/internal/workspace"
	"workspace-admin/internal/workspace/repository"
	pkgLog "workspace-admin/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new workspace UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) workspace.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
