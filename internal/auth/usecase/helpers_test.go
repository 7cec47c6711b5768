package usecase

import (
	"context"

	"workspace-admin/internal/auth/repository"
	"workspace-admin/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo fakes the /auth facade.
type mockRepo struct {
	registerFn       func(opt repository.RegisterOptions) (model.User, string, error)
	loginFn          func(opt repository.LoginOptions) (model.User, string, error)
	logoutErr        error
	logoutCalls      int
	profile          model.User
	updateProfileFn  func(opt repository.UpdateProfileOptions) (model.User, error)
	changePasswordFn func(opt repository.ChangePasswordOptions) error
	forgotEmail      string
	resetFn          func(opt repository.ResetPasswordOptions) error
}

func (m *mockRepo) Register(ctx context.Context, opt repository.RegisterOptions) (model.User, string, error) {
	return m.registerFn(opt)
}

func (m *mockRepo) Login(ctx context.Context, opt repository.LoginOptions) (model.User, string, error) {
	return m.loginFn(opt)
}

func (m *mockRepo) Logout(ctx context.Context) error {
	m.logoutCalls++
	return m.logoutErr
}

func (m *mockRepo) Profile(ctx context.Context) (model.User, error) {
	return m.profile, nil
}

func (m *mockRepo) UpdateProfile(ctx context.Context, opt repository.UpdateProfileOptions) (model.User, error) {
	return m.updateProfileFn(opt)
}

func (m *mockRepo) ChangePassword(ctx context.Context, opt repository.ChangePasswordOptions) error {
	return m.changePasswordFn(opt)
}

func (m *mockRepo) ForgotPassword(ctx context.Context, email string) error {
	m.forgotEmail = email
	return nil
}

func (m *mockRepo) ResetPassword(ctx context.Context, opt repository.ResetPasswordOptions) error {
	return m.resetFn(opt)
}
