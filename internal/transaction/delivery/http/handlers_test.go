package http

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"workspace-admin/internal/apptest"
	"workspace-admin/internal/model"
	"workspace-admin/internal/transaction"
	"workspace-admin/pkg/log"
)

type fakeUseCase struct {
	transaction.UseCase
	listed  transaction.ListInput
	created transaction.CreateInput
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope, input transaction.ListInput) (transaction.ListOutput, error) {
	f.listed = input
	if input.From == "bogus" {
		return transaction.ListOutput{}, transaction.ErrInvalidDate
	}
	return transaction.ListOutput{
		Transactions: []model.Transaction{
			{ID: 1, Type: model.TransactionPayment, Amount: 1250, User: &model.UserRef{Name: "Mona"}},
			{ID: 2, Type: model.TransactionWithdrawal, Amount: 80},
		},
		Pagination: model.Pagination{Page: 1, PerPage: 10, TotalPages: 2},
	}, nil
}

func (f *fakeUseCase) Create(ctx context.Context, sc model.Scope, input transaction.CreateInput) (model.Transaction, error) {
	f.created = input
	return model.Transaction{ID: 3, Type: input.Type, Amount: input.Amount}, nil
}

func (f *fakeUseCase) Report(ctx context.Context, sc model.Scope, rng model.ReportRange) (model.TransactionReport, error) {
	return model.TransactionReport{Net: 40, Raw: map[string]any{"net": 40.0, "refunds": 2.0}}, nil
}

func (f *fakeUseCase) ExportReport(ctx context.Context, sc model.Scope, rng model.ReportRange) (model.Export, error) {
	return model.Export{Filename: "financial-report-2024-06-20.csv", ContentType: "text/csv", Data: []byte("date,net\n")}, nil
}

func setup(t *testing.T) (*apptest.Env, *fakeUseCase) {
	env := apptest.New(t)
	uc := &fakeUseCase{}
	h := New(log.NewNop(), uc, "EGP")
	RegisterRoutes(env.Router.Group("/api/v1"), h, env.MW)
	RegisterPageRoutes(env.Router.Group("/app"), h, env.MW)
	return env, uc
}

func TestTransactionRoutes(t *testing.T) {
	env, uc := setup(t)

	t.Run("Admin only", func(t *testing.T) {
		if w := env.Do(t, model.RoleSubscriber, http.MethodGet, "/api/v1/transactions", ""); w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("List forwards filters", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/api/v1/transactions?type=payment&from=2024-01-01&user_id=4", "")
		if w.Code != http.StatusOK || uc.listed.UserID != 4 || uc.listed.Type != model.TransactionPayment || uc.listed.From != "2024-01-01" {
			t.Errorf("unexpected list %d %+v", w.Code, uc.listed)
		}
	})

	t.Run("Invalid date is 422", func(t *testing.T) {
		if w := env.Do(t, model.RoleAdmin, http.MethodGet, "/api/v1/transactions?from=bogus", ""); w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", w.Code)
		}
	})

	t.Run("Create binds type", func(t *testing.T) {
		if w := env.Do(t, model.RoleAdmin, http.MethodPost, "/api/v1/transactions", `{"user_id":2,"type":"gift","amount":5}`); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		w := env.Do(t, model.RoleAdmin, http.MethodPost, "/api/v1/transactions", `{"user_id":2,"type":"withdrawal","amount":5,"description":"Petty cash"}`)
		if w.Code != http.StatusCreated || uc.created.Type != model.TransactionWithdrawal || uc.created.Description != "Petty cash" {
			t.Errorf("unexpected create %d %+v", w.Code, uc.created)
		}
	})

	t.Run("Report is not captured by id route", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/api/v1/transactions/report?group_by=month", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"refunds":2`) {
			t.Errorf("unexpected report %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("Export downloads csv", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/api/v1/reports/financial/export", "")
		if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "text/csv" {
			t.Fatalf("unexpected export %d %s", w.Code, w.Header().Get("Content-Type"))
		}
		if !strings.Contains(w.Header().Get("Content-Disposition"), "financial-report-2024-06-20.csv") {
			t.Errorf("unexpected disposition %s", w.Header().Get("Content-Disposition"))
		}
	})

	t.Run("Page signs amounts", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/app/transactions?type=withdrawal", "")
		body := w.Body.String()
		if w.Code != http.StatusOK || !strings.Contains(body, "EGP 1,250.00") || !strings.Contains(body, "-EGP 80.00") {
			t.Errorf("unexpected page %d", w.Code)
		}
		if uc.listed.Type != model.TransactionWithdrawal {
			t.Errorf("expected type filter, got %+v", uc.listed)
		}
	})
}
