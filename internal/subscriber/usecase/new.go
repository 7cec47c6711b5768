package usecase

import (
	"workspace-admin/internal/plan"
	"workspace-admin/internal/subscriber"
	"workspace-admin/internal/subscriber/repository"
	"workspace-admin/pkg/datemath"
	pkgLog "workspace-admin/pkg/log"
)

const defaultPerPage = 10

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	plans   plan.UseCase
	cal     *datemath.Calendar
	perPage int
}

// New creates a new subscriber UseCase instance. plans supplies durations for
// computed end dates and cal resolves "today".
func New(l pkgLog.Logger, repo repository.Repository, plans plan.UseCase, cal *datemath.Calendar, perPage int) subscriber.UseCase {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		plans:   plans,
		cal:     cal,
		perPage: perPage,
	}
}
