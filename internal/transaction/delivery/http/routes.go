package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
)

// RegisterRoutes maps /transactions JSON endpoints and the financial CSV
// export, admin only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	txs := rg.Group("/transactions", mw.Auth(), mw.RequireRole(model.RoleAdmin))
	{
		txs.GET("", h.List)
		txs.POST("", h.Create)
		txs.GET("/report", h.Report)
		txs.GET("/:id", h.Detail)
		txs.DELETE("/:id", h.Delete)
	}

	rg.GET("/reports/financial/export", mw.Auth(), mw.RequireRole(model.RoleAdmin), h.Export)
}

// RegisterPageRoutes maps the /app/transactions page.
func RegisterPageRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/transactions", mw.Page(), mw.RequireRole(model.RoleAdmin), h.Page)
}
