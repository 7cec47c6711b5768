package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/view"
)

func wantsJSON(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEJSON || strings.Contains(c.GetHeader("Accept"), gin.MIMEJSON)
}

func loginForm(email, errMsg, flash string) view.AuthForm {
	return view.AuthForm{
		Title:  "Sign in",
		Action: "/auth/login",
		Error:  errMsg,
		Flash:  flash,
		Fields: []view.Field{
			{Name: "email", Label: "Email", Type: "email", Value: email, Placeholder: "you@example.com"},
			{Name: "password", Label: "Password", Type: "password"},
		},
		Submit: "Sign in",
		Links: []view.Link{
			{Title: "Create an account", URL: "/auth/register"},
			{Title: "Forgot password?", URL: "/auth/forgot-password"},
		},
	}
}

func registerForm(req registerReq, errMsg string, errs map[string]string) view.AuthForm {
	return view.AuthForm{
		Title:  "Create account",
		Action: "/auth/register",
		Error:  errMsg,
		Errors: errs,
		Fields: []view.Field{
			{Name: "name", Label: "Full name", Type: "text", Value: req.Name},
			{Name: "email", Label: "Email", Type: "email", Value: req.Email},
			{Name: "phone", Label: "Phone (optional)", Type: "tel", Value: req.Phone},
			{Name: "password", Label: "Password", Type: "password"},
			{Name: "confirm_password", Label: "Confirm password", Type: "password"},
		},
		Submit: "Create account",
		Links:  []view.Link{{Title: "Already have an account? Sign in", URL: "/auth/login"}},
	}
}

func forgotForm(email, errMsg, flash string) view.AuthForm {
	return view.AuthForm{
		Title:  "Forgot password",
		Action: "/auth/forgot-password",
		Error:  errMsg,
		Flash:  flash,
		Fields: []view.Field{{Name: "email", Label: "Email", Type: "email", Value: email}},
		Submit: "Send reset link",
		Links:  []view.Link{{Title: "Back to sign in", URL: "/auth/login"}},
	}
}

func resetForm(token, errMsg string) view.AuthForm {
	return view.AuthForm{
		Title:  "Reset password",
		Action: "/auth/reset-password",
		Error:  errMsg,
		Fields: []view.Field{
			{Name: "token", Label: "Reset token", Type: "hidden", Value: token},
			{Name: "password", Label: "New password", Type: "password"},
			{Name: "confirm_password", Label: "Confirm new password", Type: "password"},
		},
		Submit: "Reset password",
		Links:  []view.Link{{Title: "Back to sign in", URL: "/auth/login"}},
	}
}

func renderForm(c *gin.Context, status int, form view.AuthForm) {
	c.HTML(status, "auth.html", form)
}

func redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusSeeOther, path)
}
