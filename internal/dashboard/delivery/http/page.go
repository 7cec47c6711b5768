package http

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
	"workspace-admin/internal/view"
)

// Page renders /app/dashboard. Admins see every headline figure and this
// month's workspace usage; other roles see today's bookings.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	page := view.NewPage(sc, c.Request.URL.Path, "Welcome back, "+sc.Name+"!")
	page.Subtitle = "Here's what's happening with your workspace today."

	out, err := h.uc.Overview(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Overview: %v", err)
		view.RenderError(c, page, err, "Failed to fetch dashboard summary")
		return
	}

	s := out.Summary
	if sc.IsAdmin() {
		page.Cards = append(page.Cards,
			view.Card{Title: "Total Users", Value: strconv.Itoa(s.TotalUsers)},
			view.Card{Title: "Active Subscribers", Value: strconv.Itoa(s.ActiveSubscribers), Note: fmt.Sprintf("of %d", s.TotalSubscribers)},
			view.Card{Title: "Monthly Revenue", Value: view.Money(h.currency, s.MonthlyRevenue)},
		)
	}
	page.Cards = append(page.Cards, view.Card{Title: "Today's Bookings", Value: strconv.Itoa(s.TodayBookings)})
	if sc.IsAdmin() {
		page.Cards = append(page.Cards,
			view.Card{Title: "Pending Bookings", Value: strconv.Itoa(s.PendingBookings)},
			view.Card{Title: "Low Stock Products", Value: strconv.Itoa(s.LowStockProducts)},
		)
		if len(s.RecentBookings) > 0 {
			page.Tables = append(page.Tables, view.NamedTable{Heading: "Recent bookings", Table: h.recentBookings(s.RecentBookings)})
		}
		if out.Usage != nil {
			page.Tables = append(page.Tables, view.NamedTable{Heading: "Workspace usage this month", Table: h.usageTable(*out.Usage)})
		}
	}
	view.Render(c, page)
}

// FinancialPage renders /app/reports/financial with a CSV export link for
// the same range.
func (h *handler) FinancialPage(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	req := financialReq{From: c.Query("from"), To: c.Query("to"), GroupBy: c.Query("group_by")}
	page := view.NewPage(sc, c.Request.URL.Path, "Financial Reports")
	page.Subtitle = "Revenue and expenses over a period"
	page.Filters = financialFilters(req.toRange())

	rep, rng, err := h.uc.Financial(ctx, sc, req.toRange())
	if err != nil {
		h.l.Errorf(ctx, "uc.Financial: %v", err)
		view.RenderError(c, page, err, "Failed to load financial data")
		return
	}
	page.Filters = financialFilters(rng)

	q := url.Values{"from": {rng.From}, "to": {rng.To}, "group_by": {rng.GroupBy}}
	page.Actions = []view.Link{{Title: "Export CSV", URL: "/api/v1/reports/financial/export?" + q.Encode()}}
	page.Cards = []view.Card{
		{Title: "Total Revenue", Value: view.Money(h.currency, rep.TotalRevenue)},
		{Title: "Total Expenses", Value: view.Money(h.currency, rep.TotalExpenses)},
		{Title: "Net Profit", Value: view.Money(h.currency, rep.NetProfit)},
		{Title: "Transactions", Value: strconv.Itoa(rep.TransactionCount)},
	}

	heading := "Daily breakdown"
	if rng.GroupBy == "month" {
		heading = "Monthly breakdown"
	}
	page.Tables = []view.NamedTable{{Heading: heading, Table: h.periodTable(rep.DailyData)}}
	view.Render(c, page)
}

func financialFilters(rng model.ReportRange) []view.Field {
	return []view.Field{
		{Name: "from", Label: "From", Type: "date", Value: rng.From},
		{Name: "to", Label: "To", Type: "date", Value: rng.To},
		{Name: "group_by", Label: "Group by", Type: "select", Options: []view.Option{
			{Value: "day", Label: "Daily", Selected: rng.GroupBy != "month"},
			{Value: "month", Label: "Monthly", Selected: rng.GroupBy == "month"},
		}},
	}
}

func (h *handler) periodTable(rows []model.PeriodAmount) view.Table {
	t := view.Table{Columns: []string{"Period", "Revenue", "Expenses", "Net"}, Empty: "No data for this period"}
	for _, p := range rows {
		t.Rows = append(t.Rows, []string{
			view.Date(p.Date), view.Money(h.currency, p.Revenue), view.Money(h.currency, p.Expenses), view.Money(h.currency, p.Net()),
		})
	}
	return t
}

func (h *handler) recentBookings(bookings []model.Booking) view.Table {
	t := view.Table{Columns: []string{"Workspace", "User", "Start", "Status"}}
	for _, b := range bookings {
		ws, user := "-", "-"
		if b.Workspace != nil {
			ws = b.Workspace.Name
		}
		if b.User != nil {
			user = b.User.Name
		}
		t.Rows = append(t.Rows, []string{ws, user, view.DateTime(b.StartTime), view.Title(string(b.Status))})
	}
	return t
}

func (h *handler) usageTable(rep model.UsageReport) view.Table {
	t := view.Table{Columns: []string{"Workspace", "Bookings", "Hours", "Revenue"}, Empty: "No bookings this month"}
	for _, w := range rep.Workspaces {
		t.Rows = append(t.Rows, []string{
			w.WorkspaceName, strconv.Itoa(w.TotalBookings), fmt.Sprintf("%.1f", w.TotalHours), view.Money(h.currency, w.Revenue),
		})
	}
	if len(rep.Workspaces) > 0 {
		t.Footer = []string{"Total", strconv.Itoa(rep.TotalBookings), fmt.Sprintf("%.1f", rep.TotalHours), ""}
	}
	return t
}
