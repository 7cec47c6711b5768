package subscriber

import "workspace-admin/internal/model"

type ListInput struct {
	Page    int
	PerPage int
	Query   string
}

type ListOutput struct {
	Subscribers []model.Subscriber
	Pagination  model.Pagination
}

// CreateInput starts a subscription. StartDate defaults to today and EndDate
// to StartDate plus the plan duration.
type CreateInput struct {
	UserID    int
	PlanID    int
	StartDate string
	EndDate   string
	Status    model.SubscriberStatus
}

type UpdateInput struct {
	ID        int
	StartDate string
	EndDate   string
	Status    model.SubscriberStatus
}

// ChangePlanInput moves a subscriber to another plan. Dates default as in
// CreateInput.
type ChangePlanInput struct {
	ID        int
	PlanID    int
	StartDate string
	EndDate   string
}
