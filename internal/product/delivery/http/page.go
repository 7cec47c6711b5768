package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
	"workspace-admin/internal/product"
	"workspace-admin/internal/view"
)

var productColumns = []string{"ID", "Name", "Price", "Stock", "Status"}

// Page renders /app/products.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	q := c.Query("q")
	page := view.NewPage(sc, c.Request.URL.Path, "Products")
	page.Subtitle = "Inventory and sales"
	page.Filters = []view.Field{{Name: "q", Label: "Search", Type: "text", Value: q, Placeholder: "Product name"}}

	products, err := h.uc.List(ctx, sc, product.ListInput{Query: q})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		page.Tables = []view.NamedTable{{Table: view.Table{Columns: productColumns, Empty: "No products found"}}}
		view.RenderError(c, page, err, "Failed to fetch products. Please try again.")
		return
	}

	low, out := 0, 0
	for _, p := range products {
		switch {
		case p.Stock <= 0:
			out++
		case p.Stock <= model.LowStockThreshold:
			low++
		}
	}
	page.Cards = []view.Card{
		{Title: "Products", Value: strconv.Itoa(len(products))},
		{Title: "Low stock", Value: strconv.Itoa(low), Note: "at or below " + strconv.Itoa(model.LowStockThreshold)},
		{Title: "Out of stock", Value: strconv.Itoa(out)},
	}
	page.Tables = []view.NamedTable{{Table: h.productTable(products)}}
	view.Render(c, page)
}

func (h *handler) productTable(products []model.Product) view.Table {
	t := view.Table{Columns: productColumns, Empty: "No products found"}
	for _, p := range products {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(p.ID), p.Name, view.Money(h.currency, p.Price), strconv.Itoa(p.Stock), p.StockStatus(),
		})
	}
	return t
}
