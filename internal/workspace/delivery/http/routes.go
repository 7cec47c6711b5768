package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
)

// RegisterRoutes maps /workspaces JSON endpoints. Any signed-in user may list
// and view workspaces for booking; changes are admin only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	spaces := rg.Group("/workspaces", mw.Auth())
	{
		spaces.GET("", h.List)
		spaces.GET("/:id", h.Detail)
	}

	admin := spaces.Group("", mw.RequireRole(model.RoleAdmin))
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// RegisterPageRoutes maps the /app/workspaces page.
func RegisterPageRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/workspaces", mw.Page(), mw.RequireRole(model.RoleAdmin), h.Page)
}
