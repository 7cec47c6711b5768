package booking

import (
	"context"

	"workspace-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Booking, error)
	Detail(ctx context.Context, sc model.Scope, id int) (model.Booking, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Booking, error)
	Delete(ctx context.Context, sc model.Scope, id int) error
	UpdateStatus(ctx context.Context, sc model.Scope, id int, status model.BookingStatus) (model.Booking, error)
	Availability(ctx context.Context, sc model.Scope, input AvailabilityInput) (model.Availability, error)
	Slots(ctx context.Context, sc model.Scope, input SlotsInput) ([]SlotView, error)
}

// Mirror copies booking state to an external calendar.
type Mirror interface {
	Confirmed(ctx context.Context, b model.Booking) error
	Cancelled(ctx context.Context, bookingID int) error
}
