package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"workspace-admin/internal/dashboard/repository"
	dashboardAPI "workspace-admin/internal/dashboard/repository/api"
	"workspace-admin/pkg/backend"
	"workspace-admin/pkg/log"
)

func TestDashboardRepository(t *testing.T) {
	var lastQuery url.Values

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.Query()
		switch r.URL.Path {
		case "/dashboard/summary":
			json.NewEncoder(w).Encode(map[string]interface{}{"data": map[string]interface{}{
				"total_users": 40, "active_subscribers": 18, "monthly_revenue": 12500.5, "today_bookings": 6, "occupancy_rate": 0.72,
			}})
		case "/dashboard/financial":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"total_revenue": 9000, "total_expenses": 3500, "net_profit": 5500, "transaction_count": 31,
				"daily_data": []map[string]interface{}{
					{"date": "2024-06-01", "revenue": 400, "expenses": 100},
					{"date": "2024-06-02", "revenue": 0, "expenses": 250},
				},
			})
		case "/dashboard/usage":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"total_bookings": 12, "total_hours": 30,
				"workspaces": []map[string]interface{}{{"workspace_id": 2, "workspace_name": "Board Room", "total_bookings": 12, "total_hours": 30, "revenue": 3000}},
			})
		}
	}))
	defer ts.Close()

	repo := dashboardAPI.New(backend.NewClient(ts.URL), log.NewNop())
	ctx := context.Background()

	t.Run("Summary keeps unknown keys", func(t *testing.T) {
		s, err := repo.Summary(ctx)
		if err != nil || s.TotalUsers != 40 || s.MonthlyRevenue != 12500.5 {
			t.Fatalf("unexpected summary %+v %v", s, err)
		}
		if s.Raw["occupancy_rate"] != 0.72 {
			t.Errorf("expected occupancy_rate in raw, got %v", s.Raw)
		}
	})

	t.Run("Financial", func(t *testing.T) {
		rep, err := repo.Financial(ctx, repository.FinancialOptions{From: "2024-06-01", To: "2024-06-30", GroupBy: "day"})
		if err != nil || rep.NetProfit != 5500 || len(rep.DailyData) != 2 || rep.DailyData[1].Net() != -250 {
			t.Fatalf("unexpected report %+v %v", rep, err)
		}
		if lastQuery.Get("from") != "2024-06-01" || lastQuery.Get("to") != "2024-06-30" || lastQuery.Get("group_by") != "day" {
			t.Errorf("unexpected query %v", lastQuery)
		}
	})

	t.Run("Usage", func(t *testing.T) {
		rep, err := repo.Usage(ctx, repository.UsageOptions{WorkspaceID: 2, From: "2024-06-01"})
		if err != nil || rep.TotalBookings != 12 || len(rep.Workspaces) != 1 {
			t.Fatalf("unexpected usage %+v %v", rep, err)
		}
		if lastQuery.Get("workspace_id") != "2" || lastQuery.Has("to") {
			t.Errorf("unexpected query %v", lastQuery)
		}
	})
}
