package repository

import "workspace-admin/internal/model"

// ListOptions are the query parameters of GET /bookings.
type ListOptions struct {
	UserID      int
	WorkspaceID int
	Status      model.BookingStatus
	From        string
	To          string
	Page        int
	PerPage     int
}

// CreateOptions is the body of POST /bookings. Times are RFC3339 in UTC.
type CreateOptions struct {
	WorkspaceID int     `json:"workspace_id"`
	UserID      int     `json:"user_id"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Deposit     float64 `json:"deposit"`
	TotalPrice  float64 `json:"total_price"`
}

// UpdateOptions is the body of PUT /bookings/:id.
type UpdateOptions struct {
	WorkspaceID int      `json:"workspace_id,omitempty"`
	StartTime   string   `json:"start_time,omitempty"`
	EndTime     string   `json:"end_time,omitempty"`
	Deposit     *float64 `json:"deposit,omitempty"`
	TotalPrice  *float64 `json:"total_price,omitempty"`
}

// AvailabilityOptions are the query parameters of GET /bookings/availability.
type AvailabilityOptions struct {
	WorkspaceID int
	StartTime   string
	EndTime     string
}
