package usecase

import (
	"workspace-admin/internal/product"
	"workspace-admin/internal/product/repository"
	pkgLog "workspace-admin/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new product UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) product.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
