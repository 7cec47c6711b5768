package http

import (
	"workspace-admin/internal/model"
	"workspace-admin/internal/subscriber"
)

// --- Request DTOs ---

type listReq struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Query   string `form:"q"`
}

func (r listReq) toInput() subscriber.ListInput {
	return subscriber.ListInput{Page: r.Page, PerPage: r.PerPage, Query: r.Query}
}

type createReq struct {
	UserID    int    `json:"user_id"    binding:"required"`
	PlanID    int    `json:"plan_id"    binding:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

func (r createReq) toInput() subscriber.CreateInput {
	return subscriber.CreateInput{
		UserID:    r.UserID,
		PlanID:    r.PlanID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Status:    model.SubscriberStatus(r.Status),
	}
}

type updateReq struct {
	ID        int    `json:"-"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

func (r updateReq) toInput() subscriber.UpdateInput {
	return subscriber.UpdateInput{
		ID:        r.ID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Status:    model.SubscriberStatus(r.Status),
	}
}

type changePlanReq struct {
	ID        int    `json:"-"`
	PlanID    int    `json:"plan_id"    binding:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r changePlanReq) toInput() subscriber.ChangePlanInput {
	return subscriber.ChangePlanInput{ID: r.ID, PlanID: r.PlanID, StartDate: r.StartDate, EndDate: r.EndDate}
}

// --- Response DTOs ---

type listResp struct {
	Subscribers []model.Subscriber `json:"subscribers"`
	Pagination  model.Pagination   `json:"pagination"`
}

func newListResp(o subscriber.ListOutput) listResp {
	subs := o.Subscribers
	if subs == nil {
		subs = []model.Subscriber{}
	}
	return listResp{Subscribers: subs, Pagination: o.Pagination}
}
