package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
)

// RegisterRoutes maps /attendance JSON endpoints for every signed-in role.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	att := rg.Group("/attendance", mw.Auth())
	{
		att.GET("", h.List)
		att.POST("/check-in", h.CheckIn)
		att.POST("/check-out", h.CheckOut)
		att.GET("/report", h.Report)
		att.GET("/:employee_id", h.Employee)
	}
}

// RegisterPageRoutes maps the /app/attendance page.
func RegisterPageRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/attendance", mw.Page(), h.Page)
}
