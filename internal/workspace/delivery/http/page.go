package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
	"workspace-admin/internal/view"
	"workspace-admin/internal/workspace"
)

var workspaceColumns = []string{"ID", "Name", "Location", "Capacity", "Created"}

// Page renders /app/workspaces.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	q := c.Query("q")
	page := view.NewPage(sc, c.Request.URL.Path, "Workspaces")
	page.Subtitle = "Bookable desks and rooms"
	page.Filters = []view.Field{{Name: "q", Label: "Search", Type: "text", Value: q, Placeholder: "Name or location"}}

	spaces, err := h.uc.List(ctx, sc, workspace.ListInput{Query: q})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		page.Tables = []view.NamedTable{{Table: view.Table{Columns: workspaceColumns, Empty: "No workspaces found"}}}
		view.RenderError(c, page, err, "Failed to fetch workspaces. Please try again.")
		return
	}

	seats := 0
	for _, ws := range spaces {
		seats += ws.Capacity
	}
	page.Cards = []view.Card{
		{Title: "Workspaces", Value: strconv.Itoa(len(spaces))},
		{Title: "Total capacity", Value: strconv.Itoa(seats), Note: "seats"},
	}
	page.Tables = []view.NamedTable{{Table: workspaceTable(spaces)}}
	view.Render(c, page)
}

func workspaceTable(spaces []model.Workspace) view.Table {
	t := view.Table{Columns: workspaceColumns, Empty: "No workspaces found"}
	for _, ws := range spaces {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(ws.ID), ws.Name, view.Or(ws.Location, "-"), strconv.Itoa(ws.Capacity), view.Date(ws.CreatedAt),
		})
	}
	return t
}
