package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const defaultCalendarID = "primary"

// Client writes events to one Google Calendar.
type Client struct {
	service    *calendar.Service
	calendarID string
	timezone   string
}

// NewClientFromCredentialsFile creates a client from a service account JSON file.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, calendarID, timezone string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, calendarID, timezone)
}

// NewClientFromCredentialsJSON creates a client from raw service account JSON.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, calendarID, timezone string) (*Client, error) {
	cfg, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(cfg.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, calendarID, timezone), nil
}

// NewClientFromHTTP creates a client over a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, calendarID, timezone string) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, calendarID, timezone), nil
}

func newClient(svc *calendar.Service, calendarID, timezone string) *Client {
	if calendarID == "" {
		calendarID = defaultCalendarID
	}
	return &Client{service: svc, calendarID: calendarID, timezone: timezone}
}

// EventID builds a stable event id for a record. Google accepts lowercase
// a-v and digits, at least five characters.
func EventID(prefix string, id int) string {
	return fmt.Sprintf("%s%06d", prefix, id)
}

// Upsert inserts ev under its id, or updates the existing event when the id
// is already taken.
func (c *Client) Upsert(ctx context.Context, ev Event) (Event, error) {
	body := c.toAPI(ev)

	saved, err := c.service.Events.Insert(c.calendarID, body).Context(ctx).Do()
	if isStatus(err, http.StatusConflict) {
		saved, err = c.service.Events.Update(c.calendarID, ev.ID, body).Context(ctx).Do()
	}
	if err != nil {
		return Event{}, fmt.Errorf("failed to save calendar event %s: %w", ev.ID, err)
	}

	ev.HTMLLink = saved.HtmlLink
	return ev, nil
}

// Delete removes the event with id. A missing event is not an error.
func (c *Client) Delete(ctx context.Context, id string) error {
	err := c.service.Events.Delete(c.calendarID, id).Context(ctx).Do()
	if err != nil && !isStatus(err, http.StatusNotFound) && !isStatus(err, http.StatusGone) {
		return fmt.Errorf("failed to delete calendar event %s: %w", id, err)
	}
	return nil
}

func (c *Client) toAPI(ev Event) *calendar.Event {
	return &calendar.Event{
		Id:          ev.ID,
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       &calendar.EventDateTime{DateTime: ev.Start.Format(time.RFC3339), TimeZone: c.timezone},
		End:         &calendar.EventDateTime{DateTime: ev.End.Format(time.RFC3339), TimeZone: c.timezone},
	}
}

func isStatus(err error, code int) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}
