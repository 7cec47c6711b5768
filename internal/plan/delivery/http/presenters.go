package http

import "workspace-admin/internal/plan"

// --- Request DTOs ---

type createReq struct {
	Name         string  `json:"name"          binding:"required"`
	DurationDays int     `json:"duration_days" binding:"required,min=1"`
	Price        float64 `json:"price"         binding:"min=0"`
}

func (r createReq) toInput() plan.CreateInput {
	return plan.CreateInput{Name: r.Name, DurationDays: r.DurationDays, Price: r.Price}
}

type updateReq struct {
	ID           int      `json:"-"`
	Name         string   `json:"name"`
	DurationDays *int     `json:"duration_days"`
	Price        *float64 `json:"price"`
}

func (r updateReq) toInput() plan.UpdateInput {
	return plan.UpdateInput{ID: r.ID, Name: r.Name, DurationDays: r.DurationDays, Price: r.Price}
}

// --- Response DTOs ---

type listResp struct {
	Plans []plan.PlanView `json:"plans"`
}
