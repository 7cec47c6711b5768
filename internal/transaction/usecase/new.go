package usecase

import (
	"workspace-admin/internal/transaction"
	"workspace-admin/internal/transaction/repository"
	"workspace-admin/pkg/datemath"
	pkgLog "workspace-admin/pkg/log"
)

const defaultPerPage = 10

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	cal     *datemath.Calendar
	perPage int
}

// New creates a new transaction UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, cal *datemath.Calendar, perPage int) transaction.UseCase {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		cal:     cal,
		perPage: perPage,
	}
}
