package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/booking"
	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
	"workspace-admin/internal/view"
)

// Page renders /app/bookings. Admins see every booking with its user.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	status, from, to := c.Query("status"), c.Query("from"), c.Query("to")
	page := view.NewPage(sc, c.Request.URL.Path, "Bookings")
	page.Subtitle = "Workspace reservations"
	page.Filters = []view.Field{
		{Name: "status", Label: "Status", Type: "select", Options: statusOptions(status)},
		{Name: "from", Label: "From", Type: "date", Value: from},
		{Name: "to", Label: "To", Type: "date", Value: to},
	}

	columns := bookingColumns(sc)
	output, err := h.uc.List(ctx, sc, booking.ListInput{
		Status: model.BookingStatus(status),
		From:   from,
		To:     to,
		Page:   view.QueryInt(c, "page", 1),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		page.Tables = []view.NamedTable{{Table: view.Table{Columns: columns, Empty: "No bookings found"}}}
		view.RenderError(c, page, err, "Failed to fetch bookings. Please try again.")
		return
	}

	page.Tables = []view.NamedTable{{Table: h.bookingTable(sc, columns, output.Bookings)}}
	page.Pager = view.NewPager(c.Request.URL, output.Pagination)
	view.Render(c, page)
}

func bookingColumns(sc model.Scope) []string {
	if sc.IsAdmin() {
		return []string{"ID", "Workspace", "User", "Start", "End", "Price", "Status"}
	}
	return []string{"ID", "Workspace", "Start", "End", "Price", "Status"}
}

func (h *handler) bookingTable(sc model.Scope, columns []string, bookings []model.Booking) view.Table {
	t := view.Table{Columns: columns, Empty: "No bookings found"}
	for _, b := range bookings {
		ws := "-"
		if b.Workspace != nil {
			ws = b.Workspace.Name
			if b.Workspace.Location != "" {
				ws += " (" + b.Workspace.Location + ")"
			}
		}
		price := view.Money(h.currency, b.TotalPrice) + " / deposit " + view.Money(h.currency, b.Deposit)

		row := []string{strconv.Itoa(b.ID), ws}
		if sc.IsAdmin() {
			user := "-"
			if b.User != nil {
				user = b.User.Name
			}
			row = append(row, user)
		}
		row = append(row, view.DateTime(b.StartTime), view.Clock(b.EndTime), price, view.Title(string(b.Status)))
		t.Rows = append(t.Rows, row)
	}
	return t
}

func statusOptions(selected string) []view.Option {
	opts := []view.Option{{Value: "", Label: "All statuses"}}
	for _, s := range []model.BookingStatus{model.BookingPending, model.BookingConfirmed, model.BookingCancelled} {
		opts = append(opts, view.Option{Value: string(s), Label: view.Title(string(s)), Selected: string(s) == selected})
	}
	return opts
}
