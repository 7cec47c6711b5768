// Package mirror copies confirmed bookings to a Google Calendar.
package mirror

import (
	"context"
	"fmt"

	"workspace-admin/internal/booking"
	"workspace-admin/internal/model"
	"workspace-admin/pkg/datemath"
	"workspace-admin/pkg/gcalendar"
)

const eventPrefix = "booking"

// EventWriter is the part of gcalendar.Client the mirror uses.
type EventWriter interface {
	Upsert(ctx context.Context, ev gcalendar.Event) (gcalendar.Event, error)
	Delete(ctx context.Context, id string) error
}

type calendarMirror struct {
	events EventWriter
}

// New returns a booking.Mirror writing one event per booking.
func New(events EventWriter) booking.Mirror {
	return &calendarMirror{events: events}
}

func (m *calendarMirror) Confirmed(ctx context.Context, b model.Booking) error {
	start, err := datemath.ParseTime(b.StartTime)
	if err != nil {
		return fmt.Errorf("booking %d start: %w", b.ID, err)
	}
	end, err := datemath.ParseTime(b.EndTime)
	if err != nil {
		return fmt.Errorf("booking %d end: %w", b.ID, err)
	}

	ev := gcalendar.Event{
		ID:      gcalendar.EventID(eventPrefix, b.ID),
		Summary: fmt.Sprintf("Booking #%d", b.ID),
		Start:   start,
		End:     end,
	}
	if b.Workspace != nil {
		ev.Summary = b.Workspace.Name
		ev.Location = b.Workspace.Location
	}
	if b.User != nil {
		ev.Description = fmt.Sprintf("Booked by %s <%s>", b.User.Name, b.User.Email)
	}

	_, err = m.events.Upsert(ctx, ev)
	return err
}

func (m *calendarMirror) Cancelled(ctx context.Context, bookingID int) error {
	return m.events.Delete(ctx, gcalendar.EventID(eventPrefix, bookingID))
}
