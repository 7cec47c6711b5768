package repository

import "workspace-admin/internal/model"

// ListOptions are the query parameters of GET /subscribers.
type ListOptions struct {
	Page    int
	PerPage int
	Query   string
}

// CreateOptions is the body of POST /subscribers.
type CreateOptions struct {
	UserID    int                    `json:"user_id"`
	PlanID    int                    `json:"plan_id"`
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Status    model.SubscriberStatus `json:"status"`
}

// UpdateOptions is the body of PUT /subscribers/:id.
type UpdateOptions struct {
	StartDate string                 `json:"start_date,omitempty"`
	EndDate   string                 `json:"end_date,omitempty"`
	Status    model.SubscriberStatus `json:"status,omitempty"`
}

// ChangePlanOptions is the body of PUT /subscribers/:id/plan.
type ChangePlanOptions struct {
	PlanID    int    `json:"plan_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
