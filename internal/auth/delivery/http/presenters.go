package http

import (
	"workspace-admin/internal/auth"
	"workspace-admin/internal/model"
	"workspace-admin/internal/session"
)

// --- Request DTOs ---

type loginReq struct {
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Email: r.Email, Password: r.Password}
}

type registerReq struct {
	Name            string `json:"name"             form:"name"`
	Email           string `json:"email"            form:"email"`
	Password        string `json:"password"         form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	Role            string `json:"role"             form:"role"`
	Phone           string `json:"phone"            form:"phone"`
}

func (r registerReq) toInput() auth.RegisterInput {
	role := model.Role("")
	if r.Role != "" {
		role = model.ParseRole(r.Role)
	}
	confirm := r.ConfirmPassword
	if confirm == "" {
		// JSON clients may skip the confirmation field.
		confirm = r.Password
	}
	return auth.RegisterInput{
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: confirm,
		Role:            role,
		Phone:           r.Phone,
	}
}

type forgotPasswordReq struct {
	Email string `json:"email" form:"email"`
}

type resetPasswordReq struct {
	Token           string `json:"token"            form:"token"`
	Password        string `json:"password"         form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

func (r resetPasswordReq) toInput() auth.ResetPasswordInput {
	confirm := r.ConfirmPassword
	if confirm == "" {
		confirm = r.Password
	}
	return auth.ResetPasswordInput{Token: r.Token, Password: r.Password, ConfirmPassword: confirm}
}

type updateProfileReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r updateProfileReq) toInput() auth.UpdateProfileInput {
	return auth.UpdateProfileInput{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type changePasswordReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password"     binding:"required"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r changePasswordReq) toInput() auth.ChangePasswordInput {
	confirm := r.ConfirmPassword
	if confirm == "" {
		confirm = r.NewPassword
	}
	return auth.ChangePasswordInput{
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
		ConfirmPassword: confirm,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  string(u.Role),
	}
}

type sessionResp struct {
	User          userResp `json:"user"`
	Authenticated bool     `json:"authenticated"`
	Redirect      string   `json:"redirect"`
}

func newSessionResp(s session.Session, redirect string) sessionResp {
	return sessionResp{
		User:          newUserResp(s.User),
		Authenticated: s.Authenticated,
		Redirect:      redirect,
	}
}
