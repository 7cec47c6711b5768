package api

import (
	"context"
	"fmt"
	"strconv"

	"workspace-admin/internal/expense/repository"
	"workspace-admin/internal/model"
)

func (r *implRepository) List(ctx context.Context) ([]model.Expense, error) {
	var out []model.Expense
	if _, err := r.client.GetList(ctx, "/expenses", nil, "expenses", &out); err != nil {
		return nil, fmt.Errorf("expenses.List: %w", err)
	}
	return out, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Expense, error) {
	var out model.Expense
	if err := r.client.Post(ctx, "/expenses", opt, &out); err != nil {
		return model.Expense{}, fmt.Errorf("expenses.Create: %w", err)
	}
	return out, nil
}

func (r *implRepository) Detail(ctx context.Context, id int) (model.Expense, error) {
	var out model.Expense
	if err := r.client.Get(ctx, expensePath(id), nil, &out); err != nil {
		return model.Expense{}, fmt.Errorf("expenses.Detail: %w", err)
	}
	return out, nil
}

func (r *implRepository) Delete(ctx context.Context, id int) error {
	if err := r.client.Delete(ctx, expensePath(id), nil); err != nil {
		return fmt.Errorf("expenses.Delete: %w", err)
	}
	return nil
}

func (r *implRepository) Report(ctx context.Context) (model.ExpenseReport, error) {
	var out model.ExpenseReport
	if err := r.client.GetReport(ctx, "/expenses/report", nil, &out, &out.Raw); err != nil {
		return model.ExpenseReport{}, fmt.Errorf("expenses.Report: %w", err)
	}
	return out, nil
}

func expensePath(id int) string {
	return "/expenses/" + strconv.Itoa(id)
}
