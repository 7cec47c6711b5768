package workspace

import (
	"context"

	"workspace-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Workspace, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Workspace, error)
	Detail(ctx context.Context, sc model.Scope, id int) (model.Workspace, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Workspace, error)
	Delete(ctx context.Context, sc model.Scope, id int) error
}
