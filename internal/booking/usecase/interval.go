package usecase

import (
	"fmt"
	"strings"
	"time"

	"workspace-admin/internal/booking"
)

// interval resolves the booked time. A slot label wins over explicit times.
func (uc *implUseCase) interval(in booking.Interval) (time.Time, time.Time, error) {
	if strings.TrimSpace(in.Slot) != "" {
		date, err := uc.cal.Resolve(in.Date)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", booking.ErrInvalidTime, err)
		}
		start, end, err := uc.cal.SlotRange(date, in.Slot)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", booking.ErrInvalidTime, err)
		}
		return start, end, nil
	}

	start, err := uc.cal.ParseLocal(in.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", booking.ErrInvalidTime, err)
	}
	end, err := uc.cal.ParseLocal(in.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", booking.ErrInvalidTime, err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, booking.ErrTimeOrder
	}
	return start, end, nil
}

func (uc *implUseCase) hasInterval(in booking.Interval) bool {
	return strings.TrimSpace(in.Slot) != "" || strings.TrimSpace(in.StartTime) != "" || strings.TrimSpace(in.EndTime) != ""
}

// wire formats t the way the remote API stores booking times.
func wire(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
