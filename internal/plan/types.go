package plan

import "workspace-admin/internal/model"

type ListInput struct {
	Query string
}

type CreateInput struct {
	Name         string
	DurationDays int
	Price        float64
}

// UpdateInput carries a partial update. Nil fields are left untouched.
type UpdateInput struct {
	ID           int
	Name         string
	DurationDays *int
	Price        *float64
}

// PlanView is a plan with its display labels.
type PlanView struct {
	model.Plan
	DurationLabel string `json:"duration_label"`
}
