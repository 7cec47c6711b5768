package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"workspace-admin/internal/attendance/repository"
	"workspace-admin/internal/model"
)

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.AttendanceRecord, error) {
	q := url.Values{}
	if opt.EmployeeID > 0 {
		q.Set("employee_id", strconv.Itoa(opt.EmployeeID))
	}
	if opt.From != "" {
		q.Set("from", opt.From)
	}
	if opt.To != "" {
		q.Set("to", opt.To)
	}

	var out []model.AttendanceRecord
	if _, err := r.client.GetList(ctx, "/attendance", q, "attendance", &out); err != nil {
		return nil, fmt.Errorf("attendance.List: %w", err)
	}
	return out, nil
}

func (r *implRepository) CheckIn(ctx context.Context, opt repository.CheckInOptions) (model.AttendanceRecord, error) {
	var out model.AttendanceRecord
	if err := r.client.Post(ctx, "/attendance/check-in", opt, &out); err != nil {
		return model.AttendanceRecord{}, fmt.Errorf("attendance.CheckIn: %w", err)
	}
	return out, nil
}

func (r *implRepository) CheckOut(ctx context.Context, opt repository.CheckOutOptions) (model.AttendanceRecord, error) {
	var out model.AttendanceRecord
	if err := r.client.Post(ctx, "/attendance/check-out", opt, &out); err != nil {
		return model.AttendanceRecord{}, fmt.Errorf("attendance.CheckOut: %w", err)
	}
	return out, nil
}

func (r *implRepository) Employee(ctx context.Context, employeeID int) ([]model.AttendanceRecord, error) {
	var out []model.AttendanceRecord
	if _, err := r.client.GetList(ctx, "/attendance/"+strconv.Itoa(employeeID), nil, "attendance", &out); err != nil {
		return nil, fmt.Errorf("attendance.Employee: %w", err)
	}
	return out, nil
}

func (r *implRepository) Report(ctx context.Context) (model.AttendanceReport, error) {
	var out model.AttendanceReport
	if err := r.client.GetReport(ctx, "/attendance/report", nil, &out, &out.Raw); err != nil {
		return model.AttendanceReport{}, fmt.Errorf("attendance.Report: %w", err)
	}
	return out, nil
}
