package plan

import (
	"context"

	"workspace-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) ([]PlanView, error)
	Get(ctx context.Context, sc model.Scope, id int) (model.Plan, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Plan, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Plan, error)
	Delete(ctx context.Context, sc model.Scope, id int) error
}
