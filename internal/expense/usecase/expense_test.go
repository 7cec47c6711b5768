package usecase

import (
	"context"
	"errors"
	"testing"

	"workspace-admin/internal/expense"
	"workspace-admin/internal/expense/repository"
	"workspace-admin/internal/model"
	"workspace-admin/pkg/log"
)

type mockRepo struct {
	expenses []model.Expense
	created  *repository.CreateOptions
}

func (m *mockRepo) List(ctx context.Context) ([]model.Expense, error) {
	return m.expenses, nil
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.Expense, error) {
	m.created = &opt
	return model.Expense{ID: 4, Name: opt.Name, Amount: opt.Amount, Description: opt.Description}, nil
}

func (m *mockRepo) Detail(ctx context.Context, id int) (model.Expense, error) {
	return model.Expense{ID: id}, nil
}

func (m *mockRepo) Delete(ctx context.Context, id int) error {
	return nil
}

func (m *mockRepo) Report(ctx context.Context) (model.ExpenseReport, error) {
	return model.ExpenseReport{TotalAmount: 5400, Count: 2}, nil
}

func TestExpenseUseCase(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{expenses: []model.Expense{
		{ID: 1, Name: "Rent", Amount: 5000, Description: "June office rent"},
		{ID: 2, Name: "Internet", Amount: 400, Description: "Fiber line"},
		{ID: 3, Name: "Cleaning", Amount: 300, Description: "Weekly office cleaning"},
	}}
	uc := New(log.NewNop(), repo)

	t.Run("List filters by name or description", func(t *testing.T) {
		out, err := uc.List(ctx, model.Scope{}, expense.ListInput{Query: "office"})
		if err != nil || len(out) != 2 {
			t.Errorf("unexpected result %+v %v", out, err)
		}
		if total := model.TotalExpenses(out); total != 5300 {
			t.Errorf("expected total of filtered rows 5300, got %v", total)
		}
		out, _ = uc.List(ctx, model.Scope{}, expense.ListInput{Query: "INTERNET"})
		if len(out) != 1 || out[0].ID != 2 {
			t.Errorf("unexpected result %+v", out)
		}
	})

	t.Run("Create validates", func(t *testing.T) {
		if _, err := uc.Create(ctx, model.Scope{}, expense.CreateInput{Name: "", Amount: 10}); !errors.Is(err, expense.ErrMissingName) {
			t.Errorf("expected ErrMissingName, got %v", err)
		}
		if _, err := uc.Create(ctx, model.Scope{}, expense.CreateInput{Name: "Tea", Amount: 0}); !errors.Is(err, expense.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
		if repo.created != nil {
			t.Errorf("repository must not be called on invalid input")
		}
	})

	t.Run("Create trims", func(t *testing.T) {
		e, err := uc.Create(ctx, model.Scope{}, expense.CreateInput{Name: " Tea ", Amount: 120, Description: " kitchen "})
		if err != nil || e.Name != "Tea" || repo.created.Description != "kitchen" {
			t.Errorf("unexpected create %+v %v", e, err)
		}
	})

	t.Run("Report", func(t *testing.T) {
		rep, err := uc.Report(ctx, model.Scope{})
		if err != nil || rep.Count != 2 {
			t.Errorf("unexpected report %+v %v", rep, err)
		}
	})

	t.Run("Bad ids", func(t *testing.T) {
		if err := uc.Delete(ctx, model.Scope{}, 0); !errors.Is(err, expense.ErrInvalidID) {
			t.Errorf("expected ErrInvalidID, got %v", err)
		}
		if _, err := uc.Detail(ctx, model.Scope{}, -4); !errors.Is(err, expense.ErrInvalidID) {
			t.Errorf("expected ErrInvalidID, got %v", err)
		}
	})
}
