package http

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"workspace-admin/internal/apptest"
	"workspace-admin/internal/dashboard"
	"workspace-admin/internal/model"
	"workspace-admin/pkg/log"
)

type fakeUseCase struct {
	dashboard.UseCase
	rng model.ReportRange
}

func summary() model.DashboardSummary {
	return model.DashboardSummary{
		TotalUsers: 40, ActiveSubscribers: 18, TotalSubscribers: 25, MonthlyRevenue: 12500.5, TodayBookings: 6,
		Raw: map[string]any{"occupancy_rate": 0.72},
	}
}

func (f *fakeUseCase) Summary(ctx context.Context, sc model.Scope) (model.DashboardSummary, error) {
	return summary(), nil
}

func (f *fakeUseCase) Overview(ctx context.Context, sc model.Scope) (dashboard.Overview, error) {
	out := dashboard.Overview{Summary: summary()}
	if sc.IsAdmin() {
		out.Usage = &model.UsageReport{TotalBookings: 12, TotalHours: 30, Workspaces: []model.WorkspaceUsage{
			{WorkspaceName: "Board Room", TotalBookings: 12, TotalHours: 30, Revenue: 3000},
		}}
	}
	return out, nil
}

func (f *fakeUseCase) Financial(ctx context.Context, sc model.Scope, rng model.ReportRange) (model.FinancialReport, model.ReportRange, error) {
	f.rng = rng
	if rng.From == "2024-07-01" && rng.To == "2024-06-01" {
		return model.FinancialReport{}, rng, dashboard.ErrDateOrder
	}
	return model.FinancialReport{
			TotalRevenue: 9000, TotalExpenses: 3500, NetProfit: 5500, TransactionCount: 31,
			DailyData: []model.PeriodAmount{{Date: "2024-06-02", Revenue: 0, Expenses: 250}},
		},
		model.ReportRange{From: "2024-06-01", To: "2024-06-20", GroupBy: "day"}, nil
}

func setup(t *testing.T) (*apptest.Env, *fakeUseCase) {
	env := apptest.New(t)
	uc := &fakeUseCase{}
	h := New(log.NewNop(), uc, "EGP")
	RegisterRoutes(env.Router.Group("/api/v1"), h, env.MW)
	RegisterPageRoutes(env.Router.Group("/app"), h, env.MW)
	return env, uc
}

func TestDashboardRoutes(t *testing.T) {
	env, uc := setup(t)

	t.Run("Summary for admins", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/api/v1/dashboard/summary", "")
		body := w.Body.String()
		if w.Code != http.StatusOK || !strings.Contains(body, `"total_users":40`) || !strings.Contains(body, `"occupancy_rate"`) {
			t.Errorf("unexpected summary %d %s", w.Code, body)
		}
	})

	t.Run("Summary for members", func(t *testing.T) {
		w := env.Do(t, model.RoleSubscriber, http.MethodGet, "/api/v1/dashboard/summary", "")
		body := w.Body.String()
		if w.Code != http.StatusOK || strings.Contains(body, "total_users") || !strings.Contains(body, `"today_bookings":6`) {
			t.Errorf("unexpected summary %d %s", w.Code, body)
		}
	})

	t.Run("Financial admin only", func(t *testing.T) {
		if w := env.Do(t, model.RoleUser, http.MethodGet, "/api/v1/dashboard/financial", ""); w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
		if w := env.Do(t, model.RoleAdmin, http.MethodGet, "/api/v1/dashboard/financial?group_by=week", ""); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/api/v1/dashboard/financial?group_by=month&from=2024-05-01", "")
		if w.Code != http.StatusOK || uc.rng.GroupBy != "month" || !strings.Contains(w.Body.String(), `"range":{"from":"2024-06-01"`) {
			t.Errorf("unexpected report %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("Financial date order is 422", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/api/v1/dashboard/financial?from=2024-07-01&to=2024-06-01", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", w.Code)
		}
	})

	t.Run("Dashboard page per role", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/app/dashboard", "")
		body := w.Body.String()
		if w.Code != http.StatusOK || !strings.Contains(body, "Monthly Revenue") || !strings.Contains(body, "Board Room") {
			t.Errorf("unexpected admin dashboard %d", w.Code)
		}
		w = env.Do(t, model.RoleUser, http.MethodGet, "/app/dashboard", "")
		body = w.Body.String()
		if w.Code != http.StatusOK || strings.Contains(body, "Monthly Revenue") || !strings.Contains(body, "Today&#39;s Bookings") {
			t.Errorf("unexpected member dashboard %d", w.Code)
		}
	})

	t.Run("Financial page", func(t *testing.T) {
		w := env.Do(t, model.RoleAdmin, http.MethodGet, "/app/reports/financial", "")
		body := w.Body.String()
		if w.Code != http.StatusOK || !strings.Contains(body, "EGP 5,500.00") || !strings.Contains(body, "-EGP 250.00") {
			t.Errorf("unexpected page %d", w.Code)
		}
		if !strings.Contains(body, "/api/v1/reports/financial/export?from=2024-06-01") {
			t.Errorf("expected export link with resolved range")
		}
	})
}
