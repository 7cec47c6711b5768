package repository

import (
	"context"

	"workspace-admin/internal/model"
)

// Repository is the /expenses facade of the remote API.
type Repository interface {
	List(ctx context.Context) ([]model.Expense, error)
	Create(ctx context.Context, opt CreateOptions) (model.Expense, error)
	Detail(ctx context.Context, id int) (model.Expense, error)
	Delete(ctx context.Context, id int) error
	Report(ctx context.Context) (model.ExpenseReport, error)
}
