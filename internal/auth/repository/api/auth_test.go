package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"workspace-admin/internal/auth/repository"
	authAPI "workspace-admin/internal/auth/repository/api"
	"workspace-admin/pkg/backend"
	"workspace-admin/pkg/log"
)

func TestAuthRepository(t *testing.T) {
	var lastBody map[string]interface{}
	var lastAuth string

	mux := http.NewServeMux()
	record := func(r *http.Request) {
		lastBody = nil
		lastAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&lastBody)
	}

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		if lastBody["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"user":  map[string]interface{}{"id": 1, "name": "Admin", "email": "admin@ws.test", "role": "admin"},
				"token": "1|abc",
			},
		})
	})
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":  map[string]interface{}{"id": 2, "name": lastBody["name"], "role": lastBody["role"]},
			"token": "2|def",
		})
	})
	mux.HandleFunc("/api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		if r.Method == http.MethodPut {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "Profile updated",
				"user":    map[string]interface{}{"id": 1, "name": lastBody["name"]},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"id": 1, "name": "Admin", "role": "admin"})
	})
	mux.HandleFunc("/api/auth/change-password", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/auth/forgot-password", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/auth/reset-password", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.WriteHeader(http.StatusNoContent)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	repo := authAPI.New(backend.NewClient(ts.URL+"/api"), log.NewNop())
	ctx := context.Background()
	authed := backend.WithToken(ctx, "1|abc")

	t.Run("Login", func(t *testing.T) {
		u, token, err := repo.Login(ctx, repository.LoginOptions{Email: "admin@ws.test", Password: "secret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != 1 || u.Role != "admin" || token != "1|abc" {
			t.Errorf("unexpected login result %+v %q", u, token)
		}
		if lastBody["email"] != "admin@ws.test" {
			t.Errorf("unexpected payload %v", lastBody)
		}
		if lastAuth != "" {
			t.Errorf("login must be sent without a bearer token")
		}
	})

	t.Run("Login rejected", func(t *testing.T) {
		_, _, err := repo.Login(ctx, repository.LoginOptions{Email: "admin@ws.test", Password: "nope"})
		if backend.Message(err, "") != "Invalid credentials" {
			t.Errorf("expected server message, got %v", err)
		}
	})

	t.Run("Register", func(t *testing.T) {
		u, token, err := repo.Register(ctx, repository.RegisterOptions{Name: "Sara", Email: "s@ws.test", Password: "pw", Role: "subscriber"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Name != "Sara" || token != "2|def" {
			t.Errorf("unexpected register result %+v %q", u, token)
		}
		if _, ok := lastBody["phone"]; ok {
			t.Errorf("empty phone must be omitted, got %v", lastBody)
		}
	})

	t.Run("Profile bare user", func(t *testing.T) {
		u, err := repo.Profile(authed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Name != "Admin" || lastAuth != "Bearer 1|abc" {
			t.Errorf("unexpected profile %+v (auth %q)", u, lastAuth)
		}
	})

	t.Run("UpdateProfile wrapped user", func(t *testing.T) {
		u, err := repo.UpdateProfile(authed, repository.UpdateProfileOptions{Name: "Root"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Name != "Root" {
			t.Errorf("unexpected user %+v", u)
		}
	})

	t.Run("ChangePassword payload", func(t *testing.T) {
		if err := repo.ChangePassword(authed, repository.ChangePasswordOptions{CurrentPassword: "a", NewPassword: "b"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastBody["current_password"] != "a" || lastBody["new_password"] != "b" {
			t.Errorf("unexpected payload %v", lastBody)
		}
	})

	t.Run("ForgotPassword payload", func(t *testing.T) {
		if err := repo.ForgotPassword(ctx, "s@ws.test"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastBody["email"] != "s@ws.test" {
			t.Errorf("unexpected payload %v", lastBody)
		}
	})

	t.Run("ResetPassword payload", func(t *testing.T) {
		if err := repo.ResetPassword(ctx, repository.ResetPasswordOptions{Token: "t0k", Password: "new"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastBody["token"] != "t0k" || lastBody["password"] != "new" {
			t.Errorf("unexpected payload %v", lastBody)
		}
	})

	t.Run("Logout", func(t *testing.T) {
		if err := repo.Logout(authed); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastAuth != "Bearer 1|abc" {
			t.Errorf("logout must carry the token")
		}
	})
}
