package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/plan"
	"workspace-admin/internal/view"
)

var planColumns = []string{"ID", "Name", "Duration", "Price", "Created"}

// Page renders /app/plans.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	q := c.Query("q")
	page := view.NewPage(sc, c.Request.URL.Path, "Plans")
	page.Subtitle = "Subscription plans offered to members"
	page.Filters = []view.Field{{Name: "q", Label: "Search", Type: "text", Value: q, Placeholder: "Plan name"}}

	plans, err := h.uc.List(ctx, sc, plan.ListInput{Query: q})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		page.Tables = []view.NamedTable{{Table: view.Table{Columns: planColumns, Empty: "No plans found"}}}
		view.RenderError(c, page, err, "Failed to fetch plans")
		return
	}

	t := view.Table{Columns: planColumns, Empty: "No plans found"}
	for _, p := range plans {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.DurationLabel,
			view.Money(h.currency, p.Price),
			view.Date(p.CreatedAt),
		})
	}
	page.Tables = []view.NamedTable{{Table: t}}
	view.Render(c, page)
}
