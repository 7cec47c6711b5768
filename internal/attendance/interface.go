package attendance

import (
	"context"

	"workspace-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) ([]RecordView, error)
	CheckIn(ctx context.Context, sc model.Scope, input CheckInput) (model.AttendanceRecord, error)
	CheckOut(ctx context.Context, sc model.Scope, input CheckInput) (model.AttendanceRecord, error)
	Employee(ctx context.Context, sc model.Scope, employeeID int) ([]RecordView, error)
	Report(ctx context.Context, sc model.Scope) (model.AttendanceReport, error)
	// Today returns the calendar date used as the default filter.
	Today() string
}
