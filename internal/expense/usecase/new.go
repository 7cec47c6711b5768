package usecase

import (
	"workspace-admin/internal/expense"
	"workspace-admin/internal/expense/repository"
	pkgLog "workspace-admin/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new expense UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) expense.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
