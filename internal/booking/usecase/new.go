package usecase

import (
	"workspace-admin/internal/booking"
	"workspace-admin/internal/booking/repository"
	"workspace-admin/internal/transaction"
	"workspace-admin/internal/workspace"
	"workspace-admin/pkg/datemath"
	pkgLog "workspace-admin/pkg/log"
)

const (
	defaultPerPage = 10
	// slotCheckWorkers bounds concurrent availability calls when listing slots.
	slotCheckWorkers = 4
)

type implUseCase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	workspaces   workspace.UseCase
	transactions transaction.UseCase
	mirror       booking.Mirror
	cal          *datemath.Calendar
	perPage      int
}

// Deps are the collaborators of the booking use case. Mirror is optional.
type Deps struct {
	Repo         repository.Repository
	Workspaces   workspace.UseCase
	Transactions transaction.UseCase
	Mirror       booking.Mirror
	Calendar     *datemath.Calendar
	PerPage      int
}

// New creates a new booking UseCase instance.
func New(l pkgLog.Logger, d Deps) booking.UseCase {
	perPage := d.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	return &implUseCase{
		l:            l,
		repo:         d.Repo,
		workspaces:   d.Workspaces,
		transactions: d.Transactions,
		mirror:       d.Mirror,
		cal:          d.Calendar,
		perPage:      perPage,
	}
}
