package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/attendance"
	"workspace-admin/internal/middleware"
	"workspace-admin/internal/view"
	"workspace-admin/pkg/datemath"
)

var attendanceColumns = []string{"Employee", "Date", "Check in", "Check out", "Hours", "Status"}

// Page renders /app/attendance. Without a date filter it shows today.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	today := h.uc.Today()
	from, to := c.Query("from"), c.Query("to")
	if _, ok := c.GetQuery("from"); !ok {
		from = today
	}
	if _, ok := c.GetQuery("to"); !ok {
		to = today
	}
	q := c.Query("q")

	page := view.NewPage(sc, c.Request.URL.Path, "Attendance")
	page.Subtitle = "Employee check-ins"
	page.Filters = []view.Field{
		{Name: "q", Label: "Search", Type: "text", Value: q, Placeholder: "Employee name or email"},
		{Name: "from", Label: "From", Type: "date", Value: from},
		{Name: "to", Label: "To", Type: "date", Value: to},
	}

	records, err := h.uc.List(ctx, sc, attendance.ListInput{From: from, To: to, Query: q})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		page.Tables = []view.NamedTable{{Table: view.Table{Columns: attendanceColumns, Empty: "No attendance records found"}}}
		view.RenderError(c, page, err, "Failed to fetch attendance records. Please try again.")
		return
	}

	todayCount, open := 0, 0
	for _, r := range records {
		if r.Today {
			todayCount++
		}
		if r.Status == datemath.InProgress {
			open++
		}
	}
	page.Cards = []view.Card{
		{Title: "Records", Value: strconv.Itoa(len(records))},
		{Title: "Today", Value: strconv.Itoa(todayCount), Note: view.Date(today)},
		{Title: "In progress", Value: strconv.Itoa(open)},
	}
	if sc.IsAdmin() {
		if rep, err := h.uc.Report(ctx, sc); err != nil {
			h.l.Warnf(ctx, "uc.Report: %v", err)
		} else {
			page.Cards = append(page.Cards,
				view.Card{Title: "Present today", Value: fmt.Sprintf("%d / %d", rep.PresentToday, rep.TotalEmployees)},
				view.Card{Title: "Average hours", Value: fmt.Sprintf("%.1f", rep.AverageHours)},
			)
		}
	}

	page.Tables = []view.NamedTable{{Table: attendanceTable(records)}}
	view.Render(c, page)
}

func attendanceTable(records []attendance.RecordView) view.Table {
	t := view.Table{Columns: attendanceColumns, Empty: "No attendance records found"}
	for _, r := range records {
		name := "Employee #" + strconv.Itoa(r.EmployeeID)
		if r.Employee != nil && r.Employee.Name != "" {
			name = r.Employee.Name
		}
		checkOut := "-"
		if r.CheckOut != "" {
			checkOut = view.Clock(r.CheckOut)
		}
		date := r.Date
		if date == "" {
			date = r.CheckIn
		}
		t.Rows = append(t.Rows, []string{name, view.Date(date), view.Clock(r.CheckIn), checkOut, r.Hours, r.Status})
	}
	return t
}
