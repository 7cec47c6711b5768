package user

import (
	"context"

	"workspace-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.User, error)
	Detail(ctx context.Context, sc model.Scope, id int) (model.User, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.User, error)
	Delete(ctx context.Context, sc model.Scope, id int) error
	Search(ctx context.Context, sc model.Scope, query string) ([]model.User, error)
}
