package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
)

// RegisterRoutes maps /users JSON endpoints. Search backs the user pickers
// and is open to every signed-in role; the rest is admin only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	users := rg.Group("/users", mw.Auth())
	{
		users.GET("/search", h.Search)

		admin := users.Group("", mw.RequireRole(model.RoleAdmin))
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.GET("/:id", h.Detail)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// RegisterPageRoutes maps the /app/users page.
func RegisterPageRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/users", mw.Page(), mw.RequireRole(model.RoleAdmin), h.Page)
}
