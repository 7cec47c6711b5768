package subscriber

import (
	"context"

	"workspace-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Subscriber, error)
	Detail(ctx context.Context, sc model.Scope, id int) (model.Subscriber, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Subscriber, error)
	Delete(ctx context.Context, sc model.Scope, id int) error
	ChangePlan(ctx context.Context, sc model.Scope, input ChangePlanInput) (model.Subscriber, error)
}
