package view

import (
	"strings"

	"workspace-admin/internal/model"
)

var (
	adminOnly = []model.Role{model.RoleAdmin}
	everyone  = []model.Role{model.RoleAdmin, model.RoleSubscriber, model.RoleUser}
)

var navigation = []NavItem{
	{Title: "Dashboard", Path: "/app/dashboard", Roles: everyone},
	{Title: "Users", Path: "/app/users", Roles: adminOnly},
	{Title: "Subscribers", Path: "/app/subscribers", Roles: adminOnly},
	{Title: "Plans", Path: "/app/plans", Roles: adminOnly},
	{Title: "Workspaces", Path: "/app/workspaces", Roles: adminOnly},
	{Title: "Bookings", Path: "/app/bookings", Roles: everyone},
	{Title: "Products", Path: "/app/products", Roles: adminOnly},
	{Title: "Transactions", Path: "/app/transactions", Roles: adminOnly},
	{Title: "Expenses", Path: "/app/expenses", Roles: adminOnly},
	{Title: "Attendance", Path: "/app/attendance", Roles: everyone},
	{Title: "Reports", Path: "/app/reports/financial", Roles: adminOnly},
}

// NavFor returns the sidebar entries visible to role, marking the one that
// matches currentPath as active.
func NavFor(role model.Role, currentPath string) []NavItem {
	out := make([]NavItem, 0, len(navigation))
	for _, item := range navigation {
		if !hasRole(item.Roles, role) {
			continue
		}
		item.Active = currentPath == item.Path || strings.HasPrefix(currentPath, item.Path+"/")
		out = append(out, item)
	}
	return out
}

// NewPage starts a page for sc at currentPath.
func NewPage(sc model.Scope, currentPath, title string) Page {
	return Page{
		Title: title,
		User:  sc,
		Nav:   NavFor(sc.Role, currentPath),
	}
}

func hasRole(roles []model.Role, role model.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
