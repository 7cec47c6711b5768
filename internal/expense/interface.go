package expense

import (
	"context"

	"workspace-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Expense, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Expense, error)
	Detail(ctx context.Context, sc model.Scope, id int) (model.Expense, error)
	Delete(ctx context.Context, sc model.Scope, id int) error
	Report(ctx context.Context, sc model.Scope) (model.ExpenseReport, error)
}
