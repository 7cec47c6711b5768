package model

// BookingStatus is the state of a reservation.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// Booking is a reservation of a workspace for a time interval.
type Booking struct {
	ID          int           `json:"id"`
	WorkspaceID int           `json:"workspace_id"`
	UserID      int           `json:"user_id"`
	StartTime   string        `json:"start_time"`
	EndTime     string        `json:"end_time"`
	Deposit     float64       `json:"deposit"`
	TotalPrice  float64       `json:"total_price"`
	Status      BookingStatus `json:"status"`
	CreatedAt   string        `json:"created_at,omitempty"`
	Workspace   *WorkspaceRef `json:"workspace,omitempty"`
	User        *UserRef      `json:"user,omitempty"`
}

// Availability is the answer of GET /bookings/availability.
type Availability struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}
