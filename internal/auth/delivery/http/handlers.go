package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/auth"
	"workspace-admin/internal/middleware"
	"workspace-admin/pkg/backend"
	"workspace-admin/pkg/response"
)

// LoginPage renders the sign-in form. Signed-in users go straight to the
// dashboard.
func (h *handler) LoginPage(c *gin.Context) {
	if _, ok := h.mw.CurrentSession(c); ok {
		redirect(c, middleware.DashboardPath)
		return
	}

	flash := ""
	switch {
	case c.Query("reset") != "":
		flash = "Your password has been updated. You can now sign in."
	case c.Query("signed_out") != "":
		flash = "You have been signed out."
	}
	renderForm(c, http.StatusOK, loginForm("", "", flash))
}

// Login godoc
// @Summary     Sign in
// @Description Authenticates against the remote API and starts a dashboard session cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200  {object} sessionResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Invalid credentials"
// @Failure     429  {object} response.Resp "Too many attempts"
// @Router      /auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBind(&req); err != nil {
		h.fail(c, err, "Login failed", func(msg string) { renderForm(c, http.StatusBadRequest, loginForm(req.Email, msg, "")) })
		return
	}

	s, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		httpErr := h.mapError(err, "Login failed")
		h.fail(c, httpErr, "Login failed", func(msg string) {
			renderForm(c, httpErr.StatusCode, loginForm(req.Email, msg, ""))
		})
		return
	}

	h.mw.SetSessionCookie(c, s)
	if wantsJSON(c) {
		response.OK(c, newSessionResp(s, middleware.DashboardPath))
		return
	}
	redirect(c, middleware.DashboardPath)
}

// RegisterPage renders the sign-up form.
func (h *handler) RegisterPage(c *gin.Context) {
	renderForm(c, http.StatusOK, registerForm(registerReq{}, "", nil))
}

// Register godoc
// @Summary     Create an account
// @Description Registers a new account on the remote API and signs it in.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     201  {object} sessionResp
// @Failure     422  {object} response.Resp "Validation errors"
// @Router      /auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	if err := c.ShouldBind(&req); err != nil {
		h.fail(c, err, "Registration failed", func(msg string) {
			renderForm(c, http.StatusBadRequest, registerForm(req, msg, nil))
		})
		return
	}

	s, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Register: %v", err)
		httpErr := h.mapError(err, "Registration failed. Please try again.")
		h.fail(c, httpErr, "Registration failed. Please try again.", func(msg string) {
			errs := fieldErrors(httpErr.Errors)
			if len(errs) > 0 {
				msg = ""
			}
			renderForm(c, httpErr.StatusCode, registerForm(req, msg, errs))
		})
		return
	}

	h.mw.SetSessionCookie(c, s)
	if wantsJSON(c) {
		response.Created(c, newSessionResp(s, middleware.DashboardPath))
		return
	}
	redirect(c, middleware.DashboardPath)
}

// Logout godoc
// @Summary     Sign out
// @Description Ends the remote session when possible and always clears the dashboard session.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if s, ok := h.mw.CurrentSession(c); ok {
		ctx = backend.WithToken(ctx, s.Token)
		if err := h.uc.Logout(ctx, s.Scope()); err != nil {
			h.l.Errorf(ctx, "uc.Logout: %v", err)
		}
	}

	h.mw.ClearSessionCookie(c)
	if wantsJSON(c) {
		response.OK(c, gin.H{"redirect": response.LoginPath})
		return
	}
	redirect(c, response.LoginPath+"?signed_out=1")
}

// ForgotPasswordPage renders the reset-link request form.
func (h *handler) ForgotPasswordPage(c *gin.Context) {
	renderForm(c, http.StatusOK, forgotForm("", "", ""))
}

// ForgotPassword godoc
// @Summary     Request a password reset link
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body forgotPasswordReq true "Account email"
// @Success     200  {object} response.Resp "OK"
// @Router      /auth/forgot-password [POST]
func (h *handler) ForgotPassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req forgotPasswordReq
	if err := c.ShouldBind(&req); err != nil {
		h.fail(c, err, "Failed to send reset link", func(msg string) {
			renderForm(c, http.StatusBadRequest, forgotForm(req.Email, msg, ""))
		})
		return
	}

	if err := h.uc.ForgotPassword(ctx, auth.ForgotPasswordInput{Email: req.Email}); err != nil {
		h.l.Warnf(ctx, "uc.ForgotPassword: %v", err)
		httpErr := h.mapError(err, "Failed to send reset link")
		h.fail(c, httpErr, "Failed to send reset link", func(msg string) {
			renderForm(c, httpErr.StatusCode, forgotForm(req.Email, msg, ""))
		})
		return
	}

	if wantsJSON(c) {
		response.OK(c, gin.H{"message": "Reset link sent"})
		return
	}
	renderForm(c, http.StatusOK, forgotForm("", "", "Reset link sent! Check your email for password reset instructions."))
}

// ResetPasswordPage renders the new-password form for ?token=.
func (h *handler) ResetPasswordPage(c *gin.Context) {
	token := c.Query("token")
	msg := ""
	if token == "" {
		msg = "Invalid reset link. Please request a new password reset."
	}
	renderForm(c, http.StatusOK, resetForm(token, msg))
}

// ResetPassword godoc
// @Summary     Set a new password with a reset token
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body resetPasswordReq true "Token and new password"
// @Success     200  {object} response.Resp "OK"
// @Failure     400  {object} response.Resp "Invalid token"
// @Router      /auth/reset-password [POST]
func (h *handler) ResetPassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req resetPasswordReq
	if err := c.ShouldBind(&req); err != nil {
		h.fail(c, err, "Failed to reset password", func(msg string) {
			renderForm(c, http.StatusBadRequest, resetForm(req.Token, msg))
		})
		return
	}

	if err := h.uc.ResetPassword(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.ResetPassword: %v", err)
		httpErr := h.mapError(err, "Failed to reset password")
		h.fail(c, httpErr, "Failed to reset password", func(msg string) {
			renderForm(c, httpErr.StatusCode, resetForm(req.Token, msg))
		})
		return
	}

	if wantsJSON(c) {
		response.OK(c, gin.H{"redirect": response.LoginPath})
		return
	}
	redirect(c, response.LoginPath+"?reset=1")
}

// Profile godoc
// @Summary     Current user profile
// @Tags        Profile
// @Produce     json
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/profile [GET]
func (h *handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	user, err := h.uc.Profile(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Profile: %v", err)
		response.Error(c, h.mapError(err, "Failed to load profile"))
		return
	}

	response.OK(c, newUserResp(user))
}

// UpdateProfile godoc
// @Summary     Update the current user profile
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body updateProfileReq true "Profile fields"
// @Success     200  {object} userResp
// @Failure     422  {object} response.Resp "Validation errors"
// @Router      /api/v1/profile [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.uc.UpdateProfile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateProfile: %v", err)
		response.Error(c, h.mapError(err, "Failed to update profile"))
		return
	}

	response.OK(c, newUserResp(user))
}

// ChangePassword godoc
// @Summary     Change the current user password
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body changePasswordReq true "Current and new password"
// @Success     200  {object} response.Resp "OK"
// @Failure     422  {object} response.Resp "Passwords do not match"
// @Router      /api/v1/profile/password [PUT]
func (h *handler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ChangePassword(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.ChangePassword: %v", err)
		response.Error(c, h.mapError(err, "Failed to change password"))
		return
	}

	response.OK(c, gin.H{"message": "Password changed successfully!"})
}

// fail answers JSON clients with err and lets form posts re-render.
func (h *handler) fail(c *gin.Context, err error, fallback string, render func(msg string)) {
	if wantsJSON(c) {
		response.Error(c, err)
		return
	}
	msg := err.Error()
	if msg == "" {
		msg = fallback
	}
	render(msg)
}
