package repository

import (
	"context"

	"workspace-admin/internal/model"
)

// Repository is the /plans facade of the remote API.
type Repository interface {
	List(ctx context.Context) ([]model.Plan, error)
	Create(ctx context.Context, opt CreateOptions) (model.Plan, error)
	Update(ctx context.Context, id int, opt UpdateOptions) (model.Plan, error)
	Delete(ctx context.Context, id int) error
}
