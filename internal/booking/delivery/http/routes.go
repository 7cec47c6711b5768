package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
)

// RegisterRoutes maps /bookings JSON endpoints for every signed-in role.
// Ownership is enforced by the use case.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	bookings := rg.Group("/bookings", mw.Auth())
	{
		bookings.GET("", h.List)
		bookings.POST("", h.Create)
		bookings.GET("/availability", h.Availability)
		bookings.GET("/slots", h.Slots)
		bookings.GET("/:id", h.Detail)
		bookings.PUT("/:id", h.Update)
		bookings.DELETE("/:id", h.Delete)
		bookings.PUT("/:id/status", h.UpdateStatus)
	}
}

// RegisterPageRoutes maps the /app/bookings page.
func RegisterPageRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/bookings", mw.Page(), h.Page)
}
