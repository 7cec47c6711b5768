package api

import (
	"context"
	"encoding/json"
	"fmt"

	"workspace-admin/internal/auth/repository"
	"workspace-admin/internal/model"
)

// authPayload is the {user, token} answer of register and login.
type authPayload struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

func (r *implRepository) Register(ctx context.Context, opt repository.RegisterOptions) (model.User, string, error) {
	var out authPayload
	if err := r.client.Post(ctx, "/auth/register", opt, &out); err != nil {
		return model.User{}, "", fmt.Errorf("auth.Register: %w", err)
	}
	return out.User, out.Token, nil
}

func (r *implRepository) Login(ctx context.Context, opt repository.LoginOptions) (model.User, string, error) {
	var out authPayload
	if err := r.client.Post(ctx, "/auth/login", opt, &out); err != nil {
		return model.User{}, "", fmt.Errorf("auth.Login: %w", err)
	}
	return out.User, out.Token, nil
}

func (r *implRepository) Logout(ctx context.Context) error {
	if err := r.client.Post(ctx, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}
	return nil
}

func (r *implRepository) Profile(ctx context.Context) (model.User, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, "/auth/profile", nil, &raw); err != nil {
		return model.User{}, fmt.Errorf("auth.Profile: %w", err)
	}
	return decodeUser(raw)
}

func (r *implRepository) UpdateProfile(ctx context.Context, opt repository.UpdateProfileOptions) (model.User, error) {
	var raw json.RawMessage
	if err := r.client.Put(ctx, "/auth/profile", opt, &raw); err != nil {
		return model.User{}, fmt.Errorf("auth.UpdateProfile: %w", err)
	}
	return decodeUser(raw)
}

func (r *implRepository) ChangePassword(ctx context.Context, opt repository.ChangePasswordOptions) error {
	if err := r.client.Put(ctx, "/auth/change-password", opt, nil); err != nil {
		return fmt.Errorf("auth.ChangePassword: %w", err)
	}
	return nil
}

func (r *implRepository) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	if err := r.client.Post(ctx, "/auth/forgot-password", body, nil); err != nil {
		return fmt.Errorf("auth.ForgotPassword: %w", err)
	}
	return nil
}

func (r *implRepository) ResetPassword(ctx context.Context, opt repository.ResetPasswordOptions) error {
	if err := r.client.Post(ctx, "/auth/reset-password", opt, nil); err != nil {
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}
	return nil
}

// decodeUser accepts {"user": {...}} as well as a bare user object.
func decodeUser(raw json.RawMessage) (model.User, error) {
	if len(raw) == 0 {
		return model.User{}, nil
	}

	var wrapped struct {
		User *model.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.User != nil {
		return *wrapped.User, nil
	}

	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return model.User{}, fmt.Errorf("decode user: %w", err)
	}
	return u, nil
}
