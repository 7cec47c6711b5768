package datemath

import "time"

const (
	// DateLayout is the wire format of plan and subscription dates.
	DateLayout = "2006-01-02"
	// LocalDateTimeLayout is the datetime-local form value, e.g. "2024-01-01T09:00".
	LocalDateTimeLayout = "2006-01-02T15:04"

	// InProgress labels an attendance record without a check-out.
	InProgress = "In Progress"
	// Complete labels an attendance record with a check-out.
	Complete = "Complete"

	firstSlotHour = 8
	lastSlotHour  = 20
)

// Slot is one bookable hour on a given day.
type Slot struct {
	Label string    `json:"label"`
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

// inputLayouts are tried in order when parsing timestamps coming from the
// remote API or from form posts.
var inputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	LocalDateTimeLayout,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DateLayout,
}
