package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
	"workspace-admin/internal/subscriber"
	"workspace-admin/internal/view"
)

var subscriberColumns = []string{"Subscriber", "Email", "Plan", "Price", "Start", "End", "Status"}

// Page renders /app/subscribers.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	q := c.Query("q")
	page := view.NewPage(sc, c.Request.URL.Path, "Subscribers")
	page.Subtitle = "Members and their subscription plans"
	page.Filters = []view.Field{{Name: "q", Label: "Search", Type: "text", Value: q, Placeholder: "Name or email"}}

	output, err := h.uc.List(ctx, sc, subscriber.ListInput{Page: view.QueryInt(c, "page", 1), Query: q})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		page.Tables = []view.NamedTable{{Table: view.Table{Columns: subscriberColumns, Empty: "No subscribers found"}}}
		view.RenderError(c, page, err, "Failed to fetch subscribers. Please try again.")
		return
	}

	page.Tables = []view.NamedTable{{Table: h.subscriberTable(output.Subscribers)}}
	page.Pager = view.NewPager(c.Request.URL, output.Pagination)
	view.Render(c, page)
}

func (h *handler) subscriberTable(subs []model.Subscriber) view.Table {
	today := h.cal.Today()
	t := view.Table{Columns: subscriberColumns, Empty: "No subscribers found"}
	for _, s := range subs {
		name, email := "-", "-"
		if s.User != nil {
			name, email = s.User.Name, s.User.Email
		}
		planName, price := "-", "-"
		if s.Plan != nil {
			planName, price = s.Plan.Name, view.Money(h.currency, s.Plan.Price)
		}

		end := view.Date(s.EndDate)
		if len(s.EndDate) >= 10 && s.EndDate[:10] < today {
			end += " (expired)"
		}

		t.Rows = append(t.Rows, []string{name, email, planName, price, view.Date(s.StartDate), end, view.Title(string(s.Status))})
	}
	return t
}
