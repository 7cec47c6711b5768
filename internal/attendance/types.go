package attendance

import "workspace-admin/internal/model"

// ListInput filters attendance records. From and To accept the calendar's
// date expressions; Query matches employee name or email.
type ListInput struct {
	EmployeeID int
	From       string
	To         string
	Query      string
}

// CheckInput records a check-in or check-out. A blank At means now.
type CheckInput struct {
	EmployeeID int
	At         string
}

// RecordView is a record with its derived display values.
type RecordView struct {
	model.AttendanceRecord
	Hours  string `json:"hours"`
	Status string `json:"status"`
	// Today is set when the check-in falls on the current local date.
	Today bool `json:"today"`
}
