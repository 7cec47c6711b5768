package repository

import (
	"context"

	"workspace-admin/internal/model"
)

// Repository is the /attendance facade of the remote API.
type Repository interface {
	List(ctx context.Context, opt ListOptions) ([]model.AttendanceRecord, error)
	CheckIn(ctx context.Context, opt CheckInOptions) (model.AttendanceRecord, error)
	CheckOut(ctx context.Context, opt CheckOutOptions) (model.AttendanceRecord, error)
	Employee(ctx context.Context, employeeID int) ([]model.AttendanceRecord, error)
	Report(ctx context.Context) (model.AttendanceReport, error)
}
