package repository

import (
	"context"

	"workspace-admin/internal/model"
)

// Repository is the /users facade of the remote API.
type Repository interface {
	List(ctx context.Context, opt ListOptions) ([]model.User, int, error)
	Create(ctx context.Context, opt CreateOptions) (model.User, error)
	Detail(ctx context.Context, id int) (model.User, error)
	Update(ctx context.Context, id int, opt UpdateOptions) (model.User, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, query string) ([]model.User, error)
}
