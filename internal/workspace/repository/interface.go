package repository

import (
	"context"

	"workspace-admin/internal/model"
)

// Repository is the /workspaces facade of the remote API.
type Repository interface {
	List(ctx context.Context) ([]model.Workspace, error)
	Create(ctx context.Context, opt CreateOptions) (model.Workspace, error)
	Detail(ctx context.Context, id int) (model.Workspace, error)
	Update(ctx context.Context, id int, opt UpdateOptions) (model.Workspace, error)
	Delete(ctx context.Context, id int) error
}
