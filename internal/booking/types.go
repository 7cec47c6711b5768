package booking

import "workspace-admin/internal/model"

// ListInput filters the booking list. Non-admin callers only ever see their
// own bookings.
type ListInput struct {
	UserID      int
	WorkspaceID int
	Status      model.BookingStatus
	From        string
	To          string
	Page        int
	PerPage     int
}

type ListOutput struct {
	Bookings   []model.Booking
	Pagination model.Pagination
}

// Interval picks the booked time either as a date plus an hourly slot label
// ("09:00-10:00") or as explicit start and end timestamps.
type Interval struct {
	Date      string
	Slot      string
	StartTime string
	EndTime   string
}

type CreateInput struct {
	Interval
	WorkspaceID int
	UserID      int
	Deposit     float64
	TotalPrice  float64
}

type UpdateInput struct {
	Interval
	ID          int
	WorkspaceID int
	Deposit     *float64
	TotalPrice  *float64
}

type AvailabilityInput struct {
	Interval
	WorkspaceID int
}

// SlotsInput lists the bookable hours of a date. With a workspace, each slot
// is checked against the remote availability endpoint.
type SlotsInput struct {
	Date        string
	WorkspaceID int
}

// SlotView is one hourly slot of the booking form.
type SlotView struct {
	Label     string `json:"label"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}
