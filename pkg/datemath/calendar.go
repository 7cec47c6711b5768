package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrRangeOrder is returned by ResolveRange when from falls after to.
var ErrRangeOrder = errors.New("from date must not be after to date")

var relativeOffset = regexp.MustCompile(`^(in )?(\d+) (day|days|week|weeks|month|months)( ago)?$`)

// Calendar resolves dates in the dashboard's timezone.
type Calendar struct {
	location *time.Location
	now      func() time.Time
}

// NewCalendar creates a calendar for the given IANA timezone, e.g. "Africa/Cairo".
func NewCalendar(timezone string) (*Calendar, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc, now: time.Now}, nil
}

// WithNow overrides the clock. Used by tests.
func (c *Calendar) WithNow(now func() time.Time) *Calendar {
	return &Calendar{location: c.location, now: now}
}

// Location returns the calendar timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// Now returns the current time in the calendar timezone.
func (c *Calendar) Now() time.Time {
	return c.now().In(c.location)
}

// Today returns the current date as YYYY-MM-DD.
func (c *Calendar) Today() string {
	return c.Now().Format(DateLayout)
}

// Resolve turns a date expression into a YYYY-MM-DD date. Accepted forms are
// an absolute date, "today", "yesterday", "tomorrow", "in 3 days" and
// "2 weeks ago".
func (c *Calendar) Resolve(expr string) (string, error) {
	t, err := c.resolve(expr, c.Now())
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

func (c *Calendar) resolve(expr string, base time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	switch expr {
	case "", "today":
		return c.StartOfDay(base), nil
	case "tomorrow":
		return c.StartOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return c.StartOfDay(base.AddDate(0, 0, -1)), nil
	}

	if t, err := time.ParseInLocation(DateLayout, expr, c.location); err == nil {
		return t, nil
	}

	m := relativeOffset.FindStringSubmatch(expr)
	if m == nil || (m[1] != "" && m[4] != "") {
		return time.Time{}, fmt.Errorf("unrecognised date %q", expr)
	}

	amount, _ := strconv.Atoi(m[2])
	if m[4] != "" {
		amount = -amount
	}

	switch {
	case strings.HasPrefix(m[3], "day"):
		return c.StartOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(m[3], "week"):
		return c.StartOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return c.StartOfDay(base.AddDate(0, amount, 0)), nil
	}
}

// MonthStart returns the first day of the current month as YYYY-MM-DD.
func (c *Calendar) MonthStart() string {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, c.location).Format(DateLayout)
}

// ResolveRange resolves the bounds of a report. A blank from is the first day
// of the current month and a blank to is today.
func (c *Calendar) ResolveRange(from, to string) (string, string, error) {
	var err error
	if strings.TrimSpace(from) == "" {
		from = c.MonthStart()
	} else if from, err = c.Resolve(from); err != nil {
		return "", "", err
	}
	if to, err = c.Resolve(to); err != nil {
		return "", "", err
	}
	if from > to {
		return "", "", ErrRangeOrder
	}
	return from, to, nil
}

// ParseLocal parses value like ParseTime but reads values without an offset
// in the calendar timezone.
func (c *Calendar) ParseLocal(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, value, c.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// SameDay reports whether the timestamp falls on the YYYY-MM-DD date in the
// calendar timezone. Values without an offset are local.
func (c *Calendar) SameDay(value, date string) bool {
	t, err := c.ParseLocal(value)
	if err != nil {
		return strings.HasPrefix(strings.TrimSpace(value), date)
	}
	return t.In(c.location).Format(DateLayout) == date
}

// StartOfDay returns midnight of t's day in the calendar timezone.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// EndOfDay returns 23:59:59 of t's day.
func (c *Calendar) EndOfDay(t time.Time) time.Time {
	return c.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// TimeSlots lists the hourly booking slots 08:00-09:00 through 20:00-21:00
// for the given YYYY-MM-DD date.
func (c *Calendar) TimeSlots(date string) ([]Slot, error) {
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), c.location)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	slots := make([]Slot, 0, lastSlotHour-firstSlotHour+1)
	for h := firstSlotHour; h <= lastSlotHour; h++ {
		start := day.Add(time.Duration(h) * time.Hour)
		slots = append(slots, Slot{
			Label: fmt.Sprintf("%02d:00-%02d:00", h, h+1),
			Start: start,
			End:   start.Add(time.Hour),
		})
	}
	return slots, nil
}

// SlotRange resolves a slot label such as "09:00-10:00" on date into start and
// end times.
func (c *Calendar) SlotRange(date, label string) (time.Time, time.Time, error) {
	slots, err := c.TimeSlots(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	for _, s := range slots {
		if s.Label == strings.TrimSpace(label) {
			return s.Start, s.End, nil
		}
	}
	return time.Time{}, time.Time{}, fmt.Errorf("unknown time slot %q", label)
}
