package usecase

import (
	"context"
	"strings"

	"workspace-admin/internal/expense"
	"workspace-admin/internal/expense/repository"
	"workspace-admin/internal/model"
	"workspace-admin/pkg/filter"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input expense.ListInput) ([]model.Expense, error) {
	expenses, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Slice(expenses, input.Query, func(e model.Expense) []string {
		return []string{e.Name, e.Description}
	}), nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input expense.CreateInput) (model.Expense, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Expense{}, expense.ErrMissingName
	}
	if input.Amount <= 0 {
		return model.Expense{}, expense.ErrInvalidAmount
	}

	e, err := uc.repo.Create(ctx, repository.CreateOptions{
		Name:        name,
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		return model.Expense{}, err
	}

	uc.l.Infof(ctx, "expense.usecase.Create: %q %.2f", name, input.Amount)
	return e, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int) (model.Expense, error) {
	if id <= 0 {
		return model.Expense{}, expense.ErrInvalidID
	}
	return uc.repo.Detail(ctx, id)
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int) error {
	if id <= 0 {
		return expense.ErrInvalidID
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *implUseCase) Report(ctx context.Context, sc model.Scope) (model.ExpenseReport, error) {
	return uc.repo.Report(ctx)
}
