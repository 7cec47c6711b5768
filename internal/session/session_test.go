package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"workspace-admin/internal/model"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: "7", ExpiresAt: jwt.NewNumericDate(exp)}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("remote-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	user := model.User{ID: 7, Name: "Mona", Email: "mona@example.com", Role: model.RoleAdmin}

	t.Run("JWT token sets expiry", func(t *testing.T) {
		exp := now.Add(2 * time.Hour).Truncate(time.Second)
		s := New(user, signedToken(t, exp), now)
		if s.ID == "" || !s.Authenticated {
			t.Fatalf("expected authenticated session with id, got %+v", s)
		}
		if !s.ExpiresAt.Equal(exp) {
			t.Errorf("expected expiry %v, got %v", exp, s.ExpiresAt)
		}
		if s.Expired(now) || !s.Expired(exp.Add(time.Second)) {
			t.Errorf("unexpected expiry evaluation")
		}
	})

	t.Run("Opaque token never expires locally", func(t *testing.T) {
		s := New(user, "12|plain-sanctum-token", now)
		if !s.ExpiresAt.IsZero() {
			t.Errorf("expected zero expiry, got %v", s.ExpiresAt)
		}
	})

	t.Run("Scope carries role and token", func(t *testing.T) {
		sc := New(user, "tok", now).Scope()
		if !sc.IsAdmin() || sc.Token != "tok" || sc.UserID != 7 {
			t.Errorf("unexpected scope %+v", sc)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10, time.Hour).(*memoryStore)

	s := New(model.User{ID: 1, Role: model.RoleUser}, "tok", time.Now())
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	t.Run("Get", func(t *testing.T) {
		got, err := store.Get(ctx, s.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Token != "tok" {
			t.Errorf("unexpected session %+v", got)
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		if _, err := store.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Expired token is evicted", func(t *testing.T) {
		dead := s
		dead.ID = "dead"
		dead.ExpiresAt = time.Now().Add(-time.Minute)
		store.Save(ctx, dead)
		if _, err := store.Get(ctx, "dead"); !errors.Is(err, ErrExpired) {
			t.Errorf("expected ErrExpired, got %v", err)
		}
		if _, err := store.Get(ctx, "dead"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected expired session to be removed, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		store.Delete(ctx, s.ID)
		if _, err := store.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	store := NewFileStore(path)

	t.Run("Missing file", func(t *testing.T) {
		if _, err := store.Get(ctx, ""); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	s := New(model.User{ID: 3, Name: "Ops", Role: model.RoleAdmin}, "file-token", time.Now())

	t.Run("Save writes owner-only file", func(t *testing.T) {
		if err := store.Save(ctx, s); err != nil {
			t.Fatalf("save: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("expected 0600, got %v", info.Mode().Perm())
		}
		leftovers, _ := filepath.Glob(path + ".tmp-*")
		if len(leftovers) != 0 {
			t.Errorf("temp files left behind: %v", leftovers)
		}
	})

	t.Run("Get round trips", func(t *testing.T) {
		got, err := store.Get(ctx, "ignored")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Token != "file-token" || got.User.Name != "Ops" {
			t.Errorf("unexpected session %+v", got)
		}
	})

	t.Run("Delete removes file and tolerates repeat", func(t *testing.T) {
		if err := store.Delete(ctx, ""); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("expected file removed")
		}
		if err := store.Delete(ctx, ""); err != nil {
			t.Errorf("second delete should be a no-op, got %v", err)
		}
	})
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}

	store := NewRedisStore(client, "wsadmin:test:", time.Minute)
	s := New(model.User{ID: 5, Role: model.RoleSubscriber}, "redis-token", time.Now())

	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Token != "redis-token" || got.User.Role != model.RoleSubscriber {
		t.Errorf("unexpected session %+v", got)
	}

	if err := store.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestClearOnUnauthorized(t *testing.T) {
	store := NewMemoryStore(10, time.Hour)
	s := New(model.User{ID: 1}, "tok", time.Now())
	store.Save(context.Background(), s)

	hook := ClearOnUnauthorized(store, nopLogger{})

	hook(context.Background())
	if _, err := store.Get(context.Background(), s.ID); err != nil {
		t.Fatalf("hook without session id must not touch the store: %v", err)
	}

	hook(WithID(context.Background(), s.ID))
	if _, err := store.Get(context.Background(), s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected session cleared, got %v", err)
	}
}
