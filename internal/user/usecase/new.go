package usecase

import (
	"workspace-admin/internal/user"
	"workspace-admin/internal/user/repository"
	pkgLog "workspace-admin/pkg/log"
)

const defaultPerPage = 10

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	perPage int
}

// New creates a new user UseCase instance. perPage is the page size used
// when the caller does not ask for one.
func New(l pkgLog.Logger, repo repository.Repository, perPage int) user.UseCase {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		perPage: perPage,
	}
}
