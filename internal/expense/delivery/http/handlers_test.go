package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"workspace-admin/internal/apptest"
	"workspace-admin/internal/expense"
	"workspace-admin/internal/model"
	"workspace-admin/pkg/log"
)

type fakeUseCase struct {
	expense.UseCase
	query     string
	reportErr error
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope, input expense.ListInput) ([]model.Expense, error) {
	f.query = input.Query
	return []model.Expense{
		{ID: 1, Name: "Rent", Amount: 5000, Description: "June office rent"},
		{ID: 3, Name: "Cleaning", Amount: 300},
	}, nil
}

func (f *fakeUseCase) Create(ctx context.Context, sc model.Scope, input expense.CreateInput) (model.Expense, error) {
	return model.Expense{ID: 4, Name: input.Name, Amount: input.Amount}, nil
}

func (f *fakeUseCase) Report(ctx context.Context, sc model.Scope) (model.ExpenseReport, error) {
	if f.reportErr != nil {
		return model.ExpenseReport{}, f.reportErr
	}
	return model.ExpenseReport{TotalAmount: 9100, Count: 5, Raw: map[string]any{"by_month": map[string]any{"2024-06": 9100}}}, nil
}

func setup(t *testing.T) (*apptest.Env, *fakeUseCase) {
	env := apptest.New(t)
	uc := &fakeUseCase{}
	h := New(log.NewNop(), uc, "EGP")
	RegisterRoutes(env.Router.Group("/api/v1"), h, env.MW)
	RegisterPageRoutes(env.Router.Group("/app"), h, env.MW)
	return env, uc
}

func TestExpenseRoutes(t *testing.T) {
	env, uc := setup(t)

	t.Run("Admin only", func(t *testing.T) {
		if w := env.Do(t, model.RoleSubscriber, http.MethodGet, "/api/v1/expenses", ""); w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("List totals filtered rows", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/api/v1/expenses?q=office", "")
		if w.Code != http.StatusOK || uc.query != "office" || !strings.Contains(w.Body.String(), `"total":5300`) {
			t.Errorf("unexpected list %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("Create requires positive amount", func(t *testing.T) {
		if w := env.Do(t, model.RoleAdmin, http.MethodPost, "/api/v1/expenses", `{"name":"Tea","amount":0}`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if w := env.Do(t, model.RoleAdmin, http.MethodPost, "/api/v1/expenses", `{"name":"Tea","amount":120}`); w.Code != http.StatusCreated {
			t.Errorf("expected 201, got %d", w.Code)
		}
	})

	t.Run("Report keeps extra keys", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/api/v1/expenses/report", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"by_month"`) {
			t.Errorf("unexpected report %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("Page footer", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/app/expenses", "")
		body := w.Body.String()
		if w.Code != http.StatusOK || !strings.Contains(body, "EGP 5,300.00") || !strings.Contains(body, "EGP 9,100.00") {
			t.Errorf("unexpected page %d", w.Code)
		}
	})

	t.Run("Page survives report failure", func(t *testing.T) {
		uc.reportErr = errors.New("report down")
		defer func() { uc.reportErr = nil }()
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/app/expenses", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Rent") {
			t.Errorf("unexpected page %d", w.Code)
		}
	})
}
