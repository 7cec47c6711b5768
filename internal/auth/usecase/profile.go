package usecase

import (
	"context"
	"strings"

	"workspace-admin/internal/auth"
	"workspace-admin/internal/auth/repository"
	"workspace-admin/internal/model"
)

func (uc *implUseCase) Profile(ctx context.Context, sc model.Scope) (model.User, error) {
	return uc.repo.Profile(ctx)
}

func (uc *implUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input auth.UpdateProfileInput) (model.User, error) {
	user, err := uc.repo.UpdateProfile(ctx, repository.UpdateProfileOptions{
		Name:  strings.TrimSpace(input.Name),
		Email: strings.TrimSpace(input.Email),
		Phone: strings.TrimSpace(input.Phone),
	})
	if err != nil {
		return model.User{}, err
	}

	uc.refreshSession(ctx, sc, user)
	return user, nil
}

func (uc *implUseCase) ChangePassword(ctx context.Context, sc model.Scope, input auth.ChangePasswordInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return auth.ErrPasswordMismatch
	}
	return uc.repo.ChangePassword(ctx, repository.ChangePasswordOptions{
		CurrentPassword: input.CurrentPassword,
		NewPassword:     input.NewPassword,
	})
}

func (uc *implUseCase) ForgotPassword(ctx context.Context, input auth.ForgotPasswordInput) error {
	return uc.repo.ForgotPassword(ctx, strings.TrimSpace(input.Email))
}

func (uc *implUseCase) ResetPassword(ctx context.Context, input auth.ResetPasswordInput) error {
	if input.Password != input.ConfirmPassword {
		return auth.ErrPasswordMismatch
	}
	if strings.TrimSpace(input.Token) == "" {
		return auth.ErrInvalidResetToken
	}
	return uc.repo.ResetPassword(ctx, repository.ResetPasswordOptions{
		Token:    input.Token,
		Password: input.Password,
	})
}

// refreshSession keeps the stored user in step with the profile. Failures
// are logged and ignored.
func (uc *implUseCase) refreshSession(ctx context.Context, sc model.Scope, user model.User) {
	if sc.SessionID == "" {
		return
	}
	s, err := uc.sessions.Get(ctx, sc.SessionID)
	if err != nil {
		uc.l.Warnf(ctx, "auth.usecase.refreshSession: %v", err)
		return
	}

	if user.Name != "" {
		s.User.Name = user.Name
	}
	if user.Email != "" {
		s.User.Email = user.Email
	}
	if user.Phone != "" {
		s.User.Phone = user.Phone
	}
	if err := uc.sessions.Save(ctx, s); err != nil {
		uc.l.Warnf(ctx, "auth.usecase.refreshSession: %v", err)
	}
}
