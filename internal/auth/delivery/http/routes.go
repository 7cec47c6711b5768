package http

import (
	"github.com/gin-gonic/gin"

	"workspace-admin/internal/middleware"
)

// RegisterRoutes maps the public /auth pages and endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/login", h.LoginPage)
	rg.POST("/login", mw.LoginThrottle(), h.Login)
	rg.GET("/register", h.RegisterPage)
	rg.POST("/register", mw.LoginThrottle(), h.Register)
	rg.POST("/logout", h.Logout)
	rg.GET("/forgot-password", h.ForgotPasswordPage)
	rg.POST("/forgot-password", mw.LoginThrottle(), h.ForgotPassword)
	rg.GET("/reset-password", h.ResetPasswordPage)
	rg.POST("/reset-password", mw.LoginThrottle(), h.ResetPassword)
}

// RegisterProfileRoutes maps /api/v1/profile for signed-in users.
func RegisterProfileRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	profile := rg.Group("/profile", mw.Auth())
	{
		profile.GET("", h.Profile)
		profile.PUT("", h.UpdateProfile)
		profile.PUT("/password", h.ChangePassword)
	}
}
