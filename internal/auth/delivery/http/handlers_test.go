package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"workspace-admin/config"
	"workspace-admin/internal/auth"
	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
	"workspace-admin/internal/session"
	"workspace-admin/internal/view"
	"workspace-admin/pkg/backend"
	"workspace-admin/pkg/log"
)

type mockUseCase struct {
	store session.Store

	loginErr     error
	registerErr  error
	logoutCalls  int
	lastToken    string
	changeErr    error
	profile      model.User
	resetInput   auth.ResetPasswordInput
	forgotCalled bool
}

func (m *mockUseCase) start(ctx context.Context, user model.User) (session.Session, error) {
	s := session.New(user, "backend-token", time.Now())
	return s, m.store.Save(ctx, s)
}

func (m *mockUseCase) Register(ctx context.Context, input auth.RegisterInput) (session.Session, error) {
	if m.registerErr != nil {
		return session.Session{}, m.registerErr
	}
	return m.start(ctx, model.User{ID: 2, Name: input.Name, Email: input.Email, Role: model.RoleSubscriber})
}

func (m *mockUseCase) Login(ctx context.Context, input auth.LoginInput) (session.Session, error) {
	if m.loginErr != nil {
		return session.Session{}, m.loginErr
	}
	return m.start(ctx, model.User{ID: 1, Name: "Admin", Email: input.Email, Role: model.RoleAdmin})
}

func (m *mockUseCase) Logout(ctx context.Context, sc model.Scope) error {
	m.logoutCalls++
	m.lastToken = backend.TokenFromContext(ctx)
	return m.store.Delete(ctx, sc.SessionID)
}

func (m *mockUseCase) Profile(ctx context.Context, sc model.Scope) (model.User, error) {
	return m.profile, nil
}

func (m *mockUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input auth.UpdateProfileInput) (model.User, error) {
	return model.User{ID: sc.UserID, Name: input.Name, Email: input.Email, Phone: input.Phone, Role: sc.Role}, nil
}

func (m *mockUseCase) ChangePassword(ctx context.Context, sc model.Scope, input auth.ChangePasswordInput) error {
	if m.changeErr != nil {
		return m.changeErr
	}
	if input.NewPassword != input.ConfirmPassword {
		return auth.ErrPasswordMismatch
	}
	return nil
}

func (m *mockUseCase) ForgotPassword(ctx context.Context, input auth.ForgotPasswordInput) error {
	m.forgotCalled = true
	return nil
}

func (m *mockUseCase) ResetPassword(ctx context.Context, input auth.ResetPasswordInput) error {
	m.resetInput = input
	if input.Token == "" {
		return auth.ErrInvalidResetToken
	}
	return nil
}

func setupRouter(t *testing.T) (*gin.Engine, *mockUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore(10, time.Hour)
	mw := middleware.New(log.NewNop(), store, config.SessionConfig{CookieName: "ws_session", TTL: time.Hour}, config.LoginConfig{RateLimitPerMin: 600})
	uc := &mockUseCase{store: store}
	h := New(log.NewNop(), uc, mw)

	r := gin.New()
	tmpl, err := view.Templates()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	r.SetHTMLTemplate(tmpl)
	RegisterRoutes(r.Group("/auth"), h, mw)
	RegisterProfileRoutes(r.Group("/api/v1"), h, mw)
	return r, uc
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "ws_session" {
			return c
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	t.Run("JSON success sets cookie", func(t *testing.T) {
		r, _ := setupRouter(t)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@x.io","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		cookie := sessionCookie(w)
		if cookie == nil || cookie.Value == "" || !cookie.HttpOnly {
			t.Fatalf("expected http-only session cookie, got %+v", cookie)
		}

		var body struct {
			Data sessionResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Data.Redirect != middleware.DashboardPath || body.Data.User.Role != "admin" {
			t.Errorf("unexpected body: %+v", body.Data)
		}
	})

	t.Run("Form success redirects to dashboard", func(t *testing.T) {
		r, _ := setupRouter(t)
		form := url.Values{"email": {"a@x.io"}, "password": {"secret"}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != middleware.DashboardPath {
			t.Fatalf("expected 303 to dashboard, got %d %q", w.Code, w.Header().Get("Location"))
		}
	})

	t.Run("Invalid credentials keep remote message", func(t *testing.T) {
		r, uc := setupRouter(t)
		uc.loginErr = &backend.APIError{StatusCode: http.StatusUnprocessableEntity, Message: "Invalid credentials"}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@x.io","password":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid credentials") {
			t.Errorf("expected remote message, got %s", w.Body.String())
		}
	})

	t.Run("Form failure re-renders with error", func(t *testing.T) {
		r, uc := setupRouter(t)
		uc.loginErr = auth.ErrMissingCredentials

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("email=a%40x.io"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Email and password are required") {
			t.Errorf("expected error in page, got %s", w.Body.String())
		}
	})
}

func TestRegister(t *testing.T) {
	t.Run("Field errors from remote", func(t *testing.T) {
		r, uc := setupRouter(t)
		uc.registerErr = &backend.APIError{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    "The given data was invalid.",
			Errors:     map[string]any{"email": []any{"The email has already been taken."}},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"name":"N","email":"a@x.io","password":"p"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "already been taken") {
			t.Errorf("expected field error, got %s", w.Body.String())
		}
	})

	t.Run("Success answers 201", func(t *testing.T) {
		r, _ := setupRouter(t)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"name":"N","email":"a@x.io","password":"p"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if sessionCookie(w) == nil {
			t.Error("expected session cookie")
		}
	})
}

func TestLogout(t *testing.T) {
	r, uc := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@x.io","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	cookie := sessionCookie(w)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther || !strings.HasPrefix(w.Header().Get("Location"), "/auth/login") {
		t.Fatalf("expected redirect to login, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if uc.logoutCalls != 1 || uc.lastToken != "backend-token" {
		t.Errorf("expected logout with token, calls=%d token=%q", uc.logoutCalls, uc.lastToken)
	}
	if c := sessionCookie(w); c == nil || c.MaxAge >= 0 {
		t.Errorf("expected cleared cookie, got %+v", c)
	}

	// The session is gone, so the profile is no longer reachable.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", w.Code)
	}
}

func TestResetPasswordPage(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/reset-password", nil))
	if !strings.Contains(w.Body.String(), "Invalid reset link") {
		t.Errorf("expected invalid link message, got %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/reset-password?token=abc123", nil))
	if !strings.Contains(w.Body.String(), "abc123") {
		t.Errorf("expected token carried into form")
	}
}

func TestMalformedPasswordRequests(t *testing.T) {
	r, uc := setupRouter(t)

	for _, path := range []string{"/auth/forgot-password", "/auth/reset-password"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"email":`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}

	if uc.forgotCalled || uc.resetInput != (auth.ResetPasswordInput{}) {
		t.Errorf("use case should not run on a malformed body")
	}
}

func TestChangePassword(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@x.io","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	cookie := sessionCookie(w)

	t.Run("Mismatch", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/profile/password",
			strings.NewReader(`{"current_password":"a","new_password":"b","confirm_password":"c"}`))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookie)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/profile/password",
			strings.NewReader(`{"current_password":"a","new_password":"b"}`))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookie)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
