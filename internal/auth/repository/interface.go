package repository

import (
	"context"

	"workspace-admin/internal/model"
)

// Repository is the /auth facade of the remote API.
type Repository interface {
	Register(ctx context.Context, opt RegisterOptions) (model.User, string, error)
	Login(ctx context.Context, opt LoginOptions) (model.User, string, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (model.User, error)
	UpdateProfile(ctx context.Context, opt UpdateProfileOptions) (model.User, error)
	ChangePassword(ctx context.Context, opt ChangePasswordOptions) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, opt ResetPasswordOptions) error
}
