package usecase

import (
	"context"
	"fmt"
	"strings"

	"workspace-admin/internal/auth"
	"workspace-admin/internal/auth/repository"
	"workspace-admin/internal/model"
	"workspace-admin/internal/session"
)

func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (session.Session, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return session.Session{}, auth.ErrMissingCredentials
	}

	user, token, err := uc.repo.Login(ctx, repository.LoginOptions{
		Email:    email,
		Password: input.Password,
	})
	if err != nil {
		return session.Session{}, err
	}

	return uc.start(ctx, user, token)
}

func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (session.Session, error) {
	if input.Password != input.ConfirmPassword {
		return session.Session{}, auth.ErrPasswordMismatch
	}

	role := input.Role
	if role == "" {
		role = model.RoleUser
	}

	user, token, err := uc.repo.Register(ctx, repository.RegisterOptions{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
		Role:     string(role),
		Phone:    strings.TrimSpace(input.Phone),
	})
	if err != nil {
		return session.Session{}, err
	}

	return uc.start(ctx, user, token)
}

func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	// The local session goes away even when the remote logout fails.
	if err := uc.repo.Logout(ctx); err != nil {
		uc.l.Warnf(ctx, "auth.usecase.Logout: remote logout: %v", err)
	}
	if sc.SessionID == "" {
		return nil
	}
	if err := uc.sessions.Delete(ctx, sc.SessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// start persists a new session for user.
func (uc *implUseCase) start(ctx context.Context, user model.User, token string) (session.Session, error) {
	if token == "" {
		return session.Session{}, auth.ErrNoToken
	}
	user.Role = model.ParseRole(string(user.Role))

	s := session.New(user, token, uc.now())
	if err := uc.sessions.Save(ctx, s); err != nil {
		return session.Session{}, fmt.Errorf("save session: %w", err)
	}

	uc.l.Infof(ctx, "auth.usecase: user %d signed in as %s", user.ID, user.Role)
	return s, nil
}
