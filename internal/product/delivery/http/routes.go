package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
)

// RegisterRoutes maps /products JSON endpoints. Admin only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	products := rg.Group("/products", mw.Auth(), mw.RequireRole(model.RoleAdmin))
	{
		products.GET("", h.List)
		products.POST("", h.Create)
		products.POST("/sell", h.Sell)
		products.POST("/consume", h.Consume)
		products.GET("/:id", h.Detail)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
		products.PUT("/:id/stock", h.UpdateStock)
	}
}

// RegisterPageRoutes maps the /app/products page.
func RegisterPageRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/products", mw.Page(), mw.RequireRole(model.RoleAdmin), h.Page)
}
