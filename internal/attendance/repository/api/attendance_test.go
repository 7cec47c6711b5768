package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"workspace-admin/internal/attendance/repository"
	attendanceAPI "workspace-admin/internal/attendance/repository/api"
	"workspace-admin/pkg/backend"
	"workspace-admin/pkg/log"
)

func TestAttendanceRepository(t *testing.T) {
	var lastBody map[string]interface{}
	var lastPath string
	var lastQuery url.Values

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastBody = nil
		lastPath, lastQuery = r.URL.Path, r.URL.Query()
		json.NewDecoder(r.Body).Decode(&lastBody)

		switch r.URL.Path {
		case "/attendance":
			json.NewEncoder(w).Encode(map[string]interface{}{"data": []map[string]interface{}{
				{"id": 1, "employee_id": 7, "check_in": "2024-06-20T08:00:00Z", "check_out": "2024-06-20T16:30:00Z", "date": "2024-06-20",
					"employee": map[string]string{"name": "Omar", "email": "omar@example.com"}},
				{"id": 2, "employee_id": 8, "check_in": "2024-06-20T09:00:00Z", "date": "2024-06-20"},
			}})
		case "/attendance/7":
			json.NewEncoder(w).Encode([]map[string]interface{}{{"id": 1, "employee_id": 7, "check_in": "2024-06-20T08:00:00Z"}})
		case "/attendance/check-in":
			json.NewEncoder(w).Encode(map[string]interface{}{"id": 3, "employee_id": lastBody["employee_id"], "check_in": lastBody["check_in"]})
		case "/attendance/check-out":
			json.NewEncoder(w).Encode(map[string]interface{}{"message": "Checked out", "data": map[string]interface{}{"id": 3, "check_out": lastBody["check_out"]}})
		case "/attendance/report":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"total_employees": 12, "present_today": 9, "total_hours_today": 61.5, "average_hours": 6.8,
				"attendance_by_employee": []map[string]interface{}{{"employee_name": "Omar", "total_hours": 40, "days_present": 5, "attendance_rate": 100}},
				"late_arrivals":          2,
			})
		}
	}))
	defer ts.Close()

	repo := attendanceAPI.New(backend.NewClient(ts.URL), log.NewNop())
	ctx := context.Background()

	t.Run("List query", func(t *testing.T) {
		out, err := repo.List(ctx, repository.ListOptions{EmployeeID: 7, From: "2024-06-20", To: "2024-06-20"})
		if err != nil || len(out) != 2 || out[0].Employee == nil || out[0].Employee.Email != "omar@example.com" {
			t.Fatalf("unexpected list %+v %v", out, err)
		}
		if lastQuery.Get("employee_id") != "7" || lastQuery.Get("from") != "2024-06-20" || lastQuery.Get("to") != "2024-06-20" {
			t.Errorf("unexpected query %v", lastQuery)
		}
	})

	t.Run("List omits blank filters", func(t *testing.T) {
		if _, err := repo.List(ctx, repository.ListOptions{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lastQuery) != 0 {
			t.Errorf("expected no query, got %v", lastQuery)
		}
	})

	t.Run("Check in and out", func(t *testing.T) {
		rec, err := repo.CheckIn(ctx, repository.CheckInOptions{EmployeeID: 7, CheckIn: "2024-06-20T08:00:00Z"})
		if err != nil || rec.ID != 3 || lastBody["check_in"] != "2024-06-20T08:00:00Z" {
			t.Fatalf("unexpected check-in %+v %v", rec, err)
		}
		rec, err = repo.CheckOut(ctx, repository.CheckOutOptions{EmployeeID: 7, CheckOut: "2024-06-20T16:00:00Z"})
		if err != nil || rec.CheckOut != "2024-06-20T16:00:00Z" || lastPath != "/attendance/check-out" {
			t.Fatalf("unexpected check-out %+v %v", rec, err)
		}
	})

	t.Run("Employee", func(t *testing.T) {
		out, err := repo.Employee(ctx, 7)
		if err != nil || len(out) != 1 || lastPath != "/attendance/7" {
			t.Fatalf("unexpected records %+v %v", out, err)
		}
	})

	t.Run("Report", func(t *testing.T) {
		rep, err := repo.Report(ctx)
		if err != nil || rep.PresentToday != 9 || len(rep.AttendanceByEmployee) != 1 {
			t.Fatalf("unexpected report %+v %v", rep, err)
		}
		if rep.Raw["late_arrivals"] != float64(2) {
			t.Errorf("expected raw payload to keep late_arrivals, got %v", rep.Raw)
		}
	})
}
