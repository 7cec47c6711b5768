package datemath_test

import (
	"errors"
	"testing"
	"time"

	"workspace-admin/pkg/datemath"
)

func TestNewCalendar(t *testing.T) {
	if _, err := datemath.NewCalendar("Africa/Cairo"); err != nil {
		t.Fatalf("unexpected error creating valid calendar: %v", err)
	}
	if _, err := datemath.NewCalendar("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolve(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")
	cal = cal.WithNow(func() time.Time {
		return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	})

	tests := []struct {
		name    string
		expr    string
		want    string
		wantErr bool
	}{
		{name: "Empty", expr: "", want: "2024-05-01"},
		{name: "Today", expr: "today", want: "2024-05-01"},
		{name: "Tomorrow", expr: "Tomorrow", want: "2024-05-02"},
		{name: "Yesterday", expr: "yesterday", want: "2024-04-30"},
		{name: "Absolute", expr: "2024-02-29", want: "2024-02-29"},
		{name: "In 3 days", expr: "in 3 days", want: "2024-05-04"},
		{name: "2 weeks ago", expr: "2 weeks ago", want: "2024-04-17"},
		{name: "1 month ago", expr: "1 month ago", want: "2024-04-01"},
		{name: "Mixed direction", expr: "in 2 days ago", wantErr: true},
		{name: "Unknown", expr: "next funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.Resolve(tt.expr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMonthStart(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")
	cal = cal.WithNow(func() time.Time { return time.Date(2024, 3, 31, 22, 0, 0, 0, time.UTC) })
	if got := cal.MonthStart(); got != "2024-03-01" {
		t.Errorf("MonthStart() = %q, want 2024-03-01", got)
	}
}

func TestResolveRange(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")
	cal = cal.WithNow(func() time.Time { return time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC) })

	from, to, err := cal.ResolveRange("", "")
	if err != nil || from != "2024-03-01" || to != "2024-03-18" {
		t.Errorf("defaults: got %s..%s %v", from, to, err)
	}

	from, to, err = cal.ResolveRange("1 week ago", "yesterday")
	if err != nil || from != "2024-03-11" || to != "2024-03-17" {
		t.Errorf("relative: got %s..%s %v", from, to, err)
	}

	if _, _, err := cal.ResolveRange("2024-04-01", "2024-03-01"); !errors.Is(err, datemath.ErrRangeOrder) {
		t.Errorf("expected ErrRangeOrder, got %v", err)
	}
	if _, _, err := cal.ResolveRange("soon", ""); err == nil {
		t.Errorf("expected error for unknown expression")
	}
}

func TestParseLocal(t *testing.T) {
	cal, _ := datemath.NewCalendar("Africa/Cairo")

	local, err := cal.ParseLocal("2024-01-10T09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := local.UTC().Format(time.RFC3339); got != "2024-01-10T07:00:00Z" {
		t.Errorf("expected Cairo wall time, got %s", got)
	}

	offset, _ := cal.ParseLocal("2024-01-10T09:00:00Z")
	if offset.Hour() != 9 || offset.Location() != time.UTC {
		t.Errorf("explicit offset must win, got %s", offset)
	}

	if _, err := cal.ParseLocal("noon"); err == nil {
		t.Errorf("expected error")
	}
}

func TestToday(t *testing.T) {
	cal, _ := datemath.NewCalendar("Africa/Cairo")
	cal = cal.WithNow(func() time.Time {
		// 23:30 UTC is already the next day in Cairo.
		return time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)
	})
	if got := cal.Today(); got != "2024-05-02" {
		t.Errorf("expected 2024-05-02, got %q", got)
	}
}

func TestSameDay(t *testing.T) {
	cal, _ := datemath.NewCalendar("Africa/Cairo")

	t.Run("UTC timestamp read in local date", func(t *testing.T) {
		if !cal.SameDay("2024-05-01T23:30:00Z", "2024-05-02") {
			t.Errorf("expected 23:30Z to fall on the next local day")
		}
		if cal.SameDay("2024-05-01T23:30:00Z", "2024-05-01") {
			t.Errorf("expected 23:30Z not to fall on the UTC date")
		}
	})

	t.Run("Local timestamp", func(t *testing.T) {
		if !cal.SameDay("2024-05-01T09:00", "2024-05-01") {
			t.Errorf("expected same day")
		}
	})

	t.Run("Unparseable value falls back to prefix", func(t *testing.T) {
		if !cal.SameDay("2024-05-01 morning", "2024-05-01") || cal.SameDay("garbage", "2024-05-01") {
			t.Errorf("unexpected prefix fallback")
		}
	})
}

func TestEndOfDay(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	if got := cal.EndOfDay(base); !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestTimeSlots(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")

	t.Run("Hourly slots from eight to twenty one", func(t *testing.T) {
		slots, err := cal.TimeSlots("2024-05-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != 13 {
			t.Fatalf("expected 13 slots, got %d", len(slots))
		}
		if slots[0].Label != "08:00-09:00" {
			t.Errorf("unexpected first slot %q", slots[0].Label)
		}
		if slots[12].Label != "20:00-21:00" {
			t.Errorf("unexpected last slot %q", slots[12].Label)
		}
		if !slots[1].Start.Equal(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected slot start %v", slots[1].Start)
		}
	})

	t.Run("Slot range", func(t *testing.T) {
		start, end, err := cal.SlotRange("2024-05-01", "14:00-15:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if start.Hour() != 14 || end.Hour() != 15 {
			t.Errorf("unexpected range %v - %v", start, end)
		}
	})

	t.Run("Unknown slot", func(t *testing.T) {
		if _, _, err := cal.SlotRange("2024-05-01", "22:00-23:00"); err == nil {
			t.Errorf("expected error for slot outside opening hours")
		}
	})

	t.Run("Bad date", func(t *testing.T) {
		if _, err := cal.TimeSlots("May 1"); err == nil {
			t.Errorf("expected error for bad date")
		}
	})
}
