package auth

import "workspace-admin/internal/model"

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            model.Role
	Phone           string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	Name  string
	Email string
	Phone string
}

type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

type ForgotPasswordInput struct {
	Email string
}

type ResetPasswordInput struct {
	Token           string
	Password        string
	ConfirmPassword string
}
