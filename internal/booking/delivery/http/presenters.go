package http

import (
	"workspace-admin/internal/booking"
	"workspace-admin/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	UserID      int    `form:"user_id"`
	WorkspaceID int    `form:"workspace_id"`
	Status      string `form:"status"`
	From        string `form:"from"`
	To          string `form:"to"`
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
}

func (r listReq) toInput() booking.ListInput {
	return booking.ListInput{
		UserID:      r.UserID,
		WorkspaceID: r.WorkspaceID,
		Status:      model.BookingStatus(r.Status),
		From:        r.From,
		To:          r.To,
		Page:        r.Page,
		PerPage:     r.PerPage,
	}
}

// intervalReq is either date + slot ("09:00-10:00") or start_time + end_time.
type intervalReq struct {
	Date      string `json:"date"       form:"date"`
	Slot      string `json:"slot"       form:"slot"`
	StartTime string `json:"start_time" form:"start_time"`
	EndTime   string `json:"end_time"   form:"end_time"`
}

func (r intervalReq) toInterval() booking.Interval {
	return booking.Interval{Date: r.Date, Slot: r.Slot, StartTime: r.StartTime, EndTime: r.EndTime}
}

type createReq struct {
	intervalReq
	WorkspaceID int     `json:"workspace_id" binding:"required"`
	UserID      int     `json:"user_id"`
	Deposit     float64 `json:"deposit"      binding:"gte=0"`
	TotalPrice  float64 `json:"total_price"  binding:"gte=0"`
}

func (r createReq) toInput() booking.CreateInput {
	return booking.CreateInput{
		Interval:    r.toInterval(),
		WorkspaceID: r.WorkspaceID,
		UserID:      r.UserID,
		Deposit:     r.Deposit,
		TotalPrice:  r.TotalPrice,
	}
}

type updateReq struct {
	intervalReq
	ID          int      `json:"-"`
	WorkspaceID int      `json:"workspace_id"`
	Deposit     *float64 `json:"deposit"`
	TotalPrice  *float64 `json:"total_price"`
}

func (r updateReq) toInput() booking.UpdateInput {
	return booking.UpdateInput{
		Interval:    r.toInterval(),
		ID:          r.ID,
		WorkspaceID: r.WorkspaceID,
		Deposit:     r.Deposit,
		TotalPrice:  r.TotalPrice,
	}
}

type statusReq struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type availabilityReq struct {
	intervalReq
	WorkspaceID int `form:"workspace_id" binding:"required"`
}

func (r availabilityReq) toInput() booking.AvailabilityInput {
	return booking.AvailabilityInput{Interval: r.toInterval(), WorkspaceID: r.WorkspaceID}
}

type slotsReq struct {
	Date        string `form:"date"`
	WorkspaceID int    `form:"workspace_id"`
}

// --- Response DTOs ---

type listResp struct {
	Bookings   []model.Booking  `json:"bookings"`
	Pagination model.Pagination `json:"pagination"`
}

func newListResp(o booking.ListOutput) listResp {
	bookings := o.Bookings
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return listResp{Bookings: bookings, Pagination: o.Pagination}
}

type slotsResp struct {
	Slots []booking.SlotView `json:"slots"`
}
