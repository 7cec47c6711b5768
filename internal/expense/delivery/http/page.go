package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/expense"
	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
	"workspace-admin/internal/view"
)

var expenseColumns = []string{"ID", "Name", "Amount", "Description", "Date"}

// Page renders /app/expenses. The footer totals the rows shown.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	q := c.Query("q")
	page := view.NewPage(sc, c.Request.URL.Path, "Expenses")
	page.Subtitle = "Operating costs"
	page.Filters = []view.Field{{Name: "q", Label: "Search", Type: "text", Value: q, Placeholder: "Name or description"}}

	expenses, err := h.uc.List(ctx, sc, expense.ListInput{Query: q})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		page.Tables = []view.NamedTable{{Table: view.Table{Columns: expenseColumns, Empty: "No expenses found"}}}
		view.RenderError(c, page, err, "Failed to fetch expenses. Please try again.")
		return
	}

	if rep, err := h.uc.Report(ctx, sc); err != nil {
		h.l.Warnf(ctx, "uc.Report: %v", err)
	} else {
		page.Cards = []view.Card{
			{Title: "All expenses", Value: view.Money(h.currency, rep.TotalAmount)},
			{Title: "Records", Value: strconv.Itoa(rep.Count)},
		}
	}

	page.Tables = []view.NamedTable{{Table: h.expenseTable(expenses)}}
	view.Render(c, page)
}

func (h *handler) expenseTable(expenses []model.Expense) view.Table {
	t := view.Table{Columns: expenseColumns, Empty: "No expenses found"}
	for _, e := range expenses {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(e.ID), e.Name, view.Money(h.currency, e.Amount), view.Or(e.Description, "-"), view.Date(e.CreatedAt),
		})
	}
	if len(expenses) > 0 {
		t.Footer = []string{"", "Total", view.Money(h.currency, model.TotalExpenses(expenses)), "", ""}
	}
	return t
}
