package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"workspace-admin/internal/booking/repository"
	"workspace-admin/internal/model"
)

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Booking, int, error) {
	q := url.Values{}
	setInt(q, "user_id", opt.UserID)
	setInt(q, "workspace_id", opt.WorkspaceID)
	if opt.Status != "" {
		q.Set("status", string(opt.Status))
	}
	if opt.From != "" {
		q.Set("from", opt.From)
	}
	if opt.To != "" {
		q.Set("to", opt.To)
	}
	setInt(q, "page", opt.Page)
	setInt(q, "per_page", opt.PerPage)

	var out []model.Booking
	totalPages, err := r.client.GetList(ctx, "/bookings", q, "bookings", &out)
	if err != nil {
		return nil, 0, fmt.Errorf("bookings.List: %w", err)
	}
	return out, totalPages, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Booking, error) {
	var out model.Booking
	if err := r.client.Post(ctx, "/bookings", opt, &out); err != nil {
		return model.Booking{}, fmt.Errorf("bookings.Create: %w", err)
	}
	return out, nil
}

func (r *implRepository) Detail(ctx context.Context, id int) (model.Booking, error) {
	var out model.Booking
	if err := r.client.Get(ctx, bookingPath(id), nil, &out); err != nil {
		return model.Booking{}, fmt.Errorf("bookings.Detail: %w", err)
	}
	return out, nil
}

func (r *implRepository) Update(ctx context.Context, id int, opt repository.UpdateOptions) (model.Booking, error) {
	var out model.Booking
	if err := r.client.Put(ctx, bookingPath(id), opt, &out); err != nil {
		return model.Booking{}, fmt.Errorf("bookings.Update: %w", err)
	}
	return out, nil
}

func (r *implRepository) Delete(ctx context.Context, id int) error {
	if err := r.client.Delete(ctx, bookingPath(id), nil); err != nil {
		return fmt.Errorf("bookings.Delete: %w", err)
	}
	return nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, id int, status model.BookingStatus) (model.Booking, error) {
	var out model.Booking
	body := map[string]model.BookingStatus{"status": status}
	if err := r.client.Put(ctx, bookingPath(id)+"/status", body, &out); err != nil {
		return model.Booking{}, fmt.Errorf("bookings.UpdateStatus: %w", err)
	}
	return out, nil
}

func (r *implRepository) Availability(ctx context.Context, opt repository.AvailabilityOptions) (model.Availability, error) {
	q := url.Values{}
	setInt(q, "workspace_id", opt.WorkspaceID)
	q.Set("start_time", opt.StartTime)
	q.Set("end_time", opt.EndTime)

	var out model.Availability
	if err := r.client.Get(ctx, "/bookings/availability", q, &out); err != nil {
		return model.Availability{}, fmt.Errorf("bookings.Availability: %w", err)
	}
	return out, nil
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func bookingPath(id int) string {
	return "/bookings/" + strconv.Itoa(id)
}
