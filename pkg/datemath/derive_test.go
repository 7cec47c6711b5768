package datemath_test

import (
	"testing"

	"workspace-admin/pkg/datemath"
)

func TestEndDate(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		days    int
		want    string
		wantErr bool
	}{
		{name: "Thirty days", start: "2024-01-01", days: 30, want: "2024-01-31"},
		{name: "Across month end", start: "2024-01-31", days: 1, want: "2024-02-01"},
		{name: "Leap year", start: "2024-02-01", days: 29, want: "2024-03-01"},
		{name: "Zero days", start: "2024-05-10", days: 0, want: "2024-05-10"},
		{name: "RFC3339 start", start: "2024-01-01T00:00:00Z", days: 7, want: "2024-01-08"},
		{name: "Bad start", start: "01/01/2024", days: 30, wantErr: true},
		{name: "Negative duration", start: "2024-01-01", days: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datemath.EndDate(tt.start, tt.days)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EndDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("EndDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHoursWorked(t *testing.T) {
	t.Run("Completed shift", func(t *testing.T) {
		got := datemath.HoursWorked("2024-01-01T09:00", "2024-01-01T17:30")
		if got != "8.5 hours" {
			t.Errorf("expected 8.5 hours, got %q", got)
		}
	})

	t.Run("API timestamps", func(t *testing.T) {
		got := datemath.HoursWorked("2024-01-01T09:00:00Z", "2024-01-01T10:20:00Z")
		if got != "1.3 hours" {
			t.Errorf("expected 1.3 hours, got %q", got)
		}
	})

	t.Run("Quarter hours round half up", func(t *testing.T) {
		cases := map[string]string{
			"2024-01-01T17:15": "8.3 hours",
			"2024-01-01T10:15": "1.3 hours",
			"2024-01-01T12:15": "3.3 hours",
			"2024-01-01T09:45": "0.8 hours",
		}
		for out, want := range cases {
			if got := datemath.HoursWorked("2024-01-01T09:00", out); got != want {
				t.Errorf("HoursWorked(09:00, %s) = %q, want %q", out, got, want)
			}
		}
	})

	t.Run("No check-out", func(t *testing.T) {
		if got := datemath.HoursWorked("2024-01-01T09:00", ""); got != datemath.InProgress {
			t.Errorf("expected In Progress, got %q", got)
		}
	})

	t.Run("Unparseable check-in", func(t *testing.T) {
		if got := datemath.HoursWorked("garbage", "2024-01-01T17:30"); got != datemath.InProgress {
			t.Errorf("expected In Progress, got %q", got)
		}
	})
}

func TestAttendanceStatus(t *testing.T) {
	if got := datemath.AttendanceStatus(""); got != "In Progress" {
		t.Errorf("expected In Progress, got %q", got)
	}
	if got := datemath.AttendanceStatus("2024-01-01T17:30"); got != "Complete" {
		t.Errorf("expected Complete, got %q", got)
	}
}

func TestDurationLabel(t *testing.T) {
	cases := map[int]string{
		1:   "1 Day",
		7:   "1 Week",
		30:  "1 Month",
		90:  "3 Months",
		365: "1 Year",
		14:  "14 Days",
	}
	for days, want := range cases {
		if got := datemath.DurationLabel(days); got != want {
			t.Errorf("DurationLabel(%d) = %q, want %q", days, got, want)
		}
	}
}
