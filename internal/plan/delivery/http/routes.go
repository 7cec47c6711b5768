package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
)

// RegisterRoutes maps /plans JSON endpoints. Listing is open to every role
// for the subscription pickers; changes are admin only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	plans := rg.Group("/plans", mw.Auth())
	{
		plans.GET("", h.List)

		admin := plans.Group("", mw.RequireRole(model.RoleAdmin))
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// RegisterPageRoutes maps the /app/plans page.
func RegisterPageRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/plans", mw.Page(), mw.RequireRole(model.RoleAdmin), h.Page)
}
