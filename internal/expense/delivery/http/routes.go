package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
)

// RegisterRoutes maps /expenses JSON endpoints. Admin only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	expenses := rg.Group("/expenses", mw.Auth(), mw.RequireRole(model.RoleAdmin))
	{
		expenses.GET("", h.List)
		expenses.POST("", h.Create)
		expenses.GET("/report", h.Report)
		expenses.GET("/:id", h.Detail)
		expenses.DELETE("/:id", h.Delete)
	}
}

// RegisterPageRoutes maps the /app/expenses page.
func RegisterPageRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/expenses", mw.Page(), mw.RequireRole(model.RoleAdmin), h.Page)
}
