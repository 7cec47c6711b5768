package repository

import (
	"context"

	"workspace-admin/internal/model"
)

// Repository is the /bookings facade of the remote API.
type Repository interface {
	List(ctx context.Context, opt ListOptions) ([]model.Booking, int, error)
	Create(ctx context.Context, opt CreateOptions) (model.Booking, error)
	Detail(ctx context.Context, id int) (model.Booking, error)
	Update(ctx context.Context, id int, opt UpdateOptions) (model.Booking, error)
	Delete(ctx context.Context, id int) error
	UpdateStatus(ctx context.Context, id int, status model.BookingStatus) (model.Booking, error)
	Availability(ctx context.Context, opt AvailabilityOptions) (model.Availability, error)
}
