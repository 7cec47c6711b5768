package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
	"workspace-admin/internal/user"
	"workspace-admin/internal/view"
)

var userColumns = []string{"ID", "Name", "Email", "Phone", "Role", "Status", "Joined"}

// Page renders /app/users.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	q := c.Query("q")
	page := view.NewPage(sc, c.Request.URL.Path, "Users")
	page.Subtitle = "Manage dashboard accounts and their roles"
	page.Filters = []view.Field{{Name: "q", Label: "Search", Type: "text", Value: q, Placeholder: "Name or email"}}

	output, err := h.uc.List(ctx, sc, user.ListInput{Page: view.QueryInt(c, "page", 1), Query: q})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		page.Tables = []view.NamedTable{{Table: view.Table{Columns: userColumns, Empty: "No users found"}}}
		view.RenderError(c, page, err, "Failed to fetch users. Please try again.")
		return
	}

	page.Tables = []view.NamedTable{{Table: userTable(output.Users)}}
	page.Pager = view.NewPager(c.Request.URL, output.Pagination)
	view.Render(c, page)
}

func userTable(users []model.User) view.Table {
	t := view.Table{Columns: userColumns, Empty: "No users found"}
	for _, u := range users {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(u.ID),
			u.Name,
			u.Email,
			view.Or(u.Phone, "-"),
			view.Title(string(u.Role)),
			view.Title(view.Or(u.Status, "active")),
			view.Date(u.CreatedAt),
		})
	}
	return t
}
