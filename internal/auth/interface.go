package auth

import (
	"context"

	"workspace-admin/internal/model"
	"workspace-admin/internal/session"
)

// UseCase drives sign-in, sign-up and account maintenance. Successful
// Register and Login calls persist a session in the auth store.
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (session.Session, error)
	Login(ctx context.Context, input LoginInput) (session.Session, error)
	Logout(ctx context.Context, sc model.Scope) error
	Profile(ctx context.Context, sc model.Scope) (model.User, error)
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (model.User, error)
	ChangePassword(ctx context.Context, sc model.Scope, input ChangePasswordInput) error
	ForgotPassword(ctx context.Context, input ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}
