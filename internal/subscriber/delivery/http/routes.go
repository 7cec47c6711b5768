package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
)

// RegisterRoutes maps /subscribers JSON endpoints, admin only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	subs := rg.Group("/subscribers", mw.Auth(), mw.RequireRole(model.RoleAdmin))
	{
		subs.GET("", h.List)
		subs.POST("", h.Create)
		subs.GET("/:id", h.Detail)
		subs.PUT("/:id", h.Update)
		subs.DELETE("/:id", h.Delete)
		subs.PUT("/:id/plan", h.ChangePlan)
	}
}

// RegisterPageRoutes maps the /app/subscribers page.
func RegisterPageRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/subscribers", mw.Page(), mw.RequireRole(model.RoleAdmin), h.Page)
}
