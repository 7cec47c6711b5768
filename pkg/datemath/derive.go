package datemath

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ParseTime parses the timestamp layouts used by the remote API and the
// dashboard forms. Values without an offset are read as UTC.
func ParseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// EndDate returns start + durationDays as YYYY-MM-DD.
// EndDate("2024-01-01", 30) == "2024-01-31".
func EndDate(start string, durationDays int) (string, error) {
	t, err := ParseTime(start)
	if err != nil {
		return "", fmt.Errorf("invalid start date: %w", err)
	}
	if durationDays < 0 {
		return "", fmt.Errorf("negative duration: %d", durationDays)
	}
	return t.AddDate(0, 0, durationDays).Format(DateLayout), nil
}

// HoursWorked renders the time between check-in and check-out with one
// decimal, e.g. "8.5 hours". An empty check-out yields "In Progress".
func HoursWorked(checkIn, checkOut string) string {
	if strings.TrimSpace(checkOut) == "" {
		return InProgress
	}
	in, err := ParseTime(checkIn)
	if err != nil {
		return InProgress
	}
	out, err := ParseTime(checkOut)
	if err != nil {
		return InProgress
	}
	// Halves round up: 8.25 hours reads "8.3 hours".
	hours := math.Round(out.Sub(in).Hours()*10) / 10
	return fmt.Sprintf("%.1f hours", hours)
}

// AttendanceStatus is Complete once a check-out exists.
func AttendanceStatus(checkOut string) string {
	if strings.TrimSpace(checkOut) == "" {
		return InProgress
	}
	return Complete
}

// DurationLabel renders a plan duration in days.
func DurationLabel(days int) string {
	switch days {
	case 1:
		return "1 Day"
	case 7:
		return "1 Week"
	case 30:
		return "1 Month"
	case 90:
		return "3 Months"
	case 365:
		return "1 Year"
	default:
		return fmt.Sprintf("%d Days", days)
	}
}
