package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
)

// RegisterRoutes maps /dashboard JSON endpoints. The summary is open to every
// signed-in role; reports are admin only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	dash := rg.Group("/dashboard", mw.Auth())
	{
		dash.GET("/summary", h.Summary)
	}

	reports := dash.Group("", mw.RequireRole(model.RoleAdmin))
	{
		reports.GET("/financial", h.Financial)
		reports.GET("/usage", h.Usage)
	}
}

// RegisterPageRoutes maps /app/dashboard and /app/reports/financial.
func RegisterPageRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/dashboard", mw.Page(), h.Page)
	rg.GET("/reports/financial", mw.Page(), mw.RequireRole(model.RoleAdmin), h.FinancialPage)
}
