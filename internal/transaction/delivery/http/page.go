package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
	"workspace-admin/internal/transaction"
	"workspace-admin/internal/view"
)

var transactionColumns = []string{"ID", "User", "Type", "Amount", "Description", "Date"}

// Page renders /app/transactions.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	txType, from, to := c.Query("type"), c.Query("from"), c.Query("to")
	page := view.NewPage(sc, c.Request.URL.Path, "Transactions")
	page.Subtitle = "Payments and withdrawals"
	page.Filters = []view.Field{
		{Name: "type", Label: "Type", Type: "select", Options: typeOptions(txType)},
		{Name: "from", Label: "From", Type: "date", Value: from},
		{Name: "to", Label: "To", Type: "date", Value: to},
	}

	output, err := h.uc.List(ctx, sc, transaction.ListInput{
		Type: model.TransactionType(txType),
		From: from,
		To:   to,
		Page: view.QueryInt(c, "page", 1),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		page.Tables = []view.NamedTable{{Table: view.Table{Columns: transactionColumns, Empty: "No transactions found"}}}
		view.RenderError(c, page, err, "Failed to fetch transactions. Please try again.")
		return
	}

	page.Tables = []view.NamedTable{{Table: h.transactionTable(output.Transactions)}}
	page.Pager = view.NewPager(c.Request.URL, output.Pagination)
	view.Render(c, page)
}

func (h *handler) transactionTable(txs []model.Transaction) view.Table {
	t := view.Table{Columns: transactionColumns, Empty: "No transactions found"}
	for _, tx := range txs {
		user := "-"
		if tx.User != nil {
			user = tx.User.Name
		}
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(tx.ID),
			user,
			view.Title(string(tx.Type)),
			view.SignedMoney(h.currency, string(tx.Type), tx.Amount),
			view.Or(tx.Description, "-"),
			view.DateTime(tx.CreatedAt),
		})
	}
	return t
}

func typeOptions(selected string) []view.Option {
	opts := []view.Option{{Value: "", Label: "All types"}}
	for _, t := range []model.TransactionType{model.TransactionPayment, model.TransactionWithdrawal} {
		opts = append(opts, view.Option{Value: string(t), Label: view.Title(string(t)), Selected: string(t) == selected})
	}
	return opts
}
