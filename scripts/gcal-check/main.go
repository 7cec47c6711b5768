// scripts/gcal-check/main.go
//
// Verifies that the configured service account can write to the booking
// calendar. It writes a probe event an hour from now and deletes it again.
//
// Usage:
//
//	go run scripts/gcal-check/main.go [credentials.json]
//
// Share the calendar with the service account email first.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"workspace-admin/config"
	"workspace-admin/pkg/datemath"
	"workspace-admin/pkg/gcalendar"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	credsPath := cfg.GoogleCalendar.CredentialsPath
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if credsPath == "" {
		log.Fatal("No credentials: set google_calendar.credentials_path or pass a file")
	}

	cal, err := datemath.NewCalendar(cfg.Dashboard.Timezone)
	if err != nil {
		log.Fatalf("Invalid dashboard.timezone: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, credsPath, cfg.GoogleCalendar.CalendarID, cal.Location().String())
	if err != nil {
		log.Fatalf("Failed to create calendar client: %v", err)
	}

	start := cal.Now().Add(time.Hour).Truncate(time.Hour)
	probe := gcalendar.Event{
		ID:          gcalendar.EventID("probe", int(start.Unix()%1000000)),
		Summary:     "workspace-admin calendar check",
		Description: "Safe to delete.",
		Start:       start,
		End:         start.Add(time.Hour),
	}

	written, err := client.Upsert(ctx, probe)
	if err != nil {
		log.Fatalf("Write failed: %v\nIs the calendar %q shared with the service account?", err, cfg.GoogleCalendar.CalendarID)
	}
	fmt.Printf("Wrote probe event %s\n", written.HTMLLink)

	if err := client.Delete(ctx, probe.ID); err != nil {
		log.Fatalf("Delete failed: %v", err)
	}
	fmt.Println("Calendar mirror is ready.")
}
