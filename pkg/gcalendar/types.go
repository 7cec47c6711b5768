package gcalendar

import "time"

// Event is the subset of a Google Calendar event the dashboard writes.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	HTMLLink    string
}
