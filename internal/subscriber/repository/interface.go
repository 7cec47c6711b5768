package repository

import (
	"context"

	"workspace-admin/internal/model"
)

// Repository is the /subscribers facade of the remote API.
type Repository interface {
	List(ctx context.Context, opt ListOptions) ([]model.Subscriber, int, error)
	Create(ctx context.Context, opt CreateOptions) (model.Subscriber, error)
	Detail(ctx context.Context, id int) (model.Subscriber, error)
	Update(ctx context.Context, id int, opt UpdateOptions) (model.Subscriber, error)
	Delete(ctx context.Context, id int) error
	ChangePlan(ctx context.Context, id int, opt ChangePlanOptions) (model.Subscriber, error)
}
