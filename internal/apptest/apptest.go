// Package apptest wires a gin engine with sessions, middleware and templates
// for delivery tests.
package apptest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"workspace-admin/config"
	"workspace-admin/internal/middleware"
	"workspace-admin/internal/model"
	"workspace-admin/internal/session"
	"workspace-admin/internal/view"
	"workspace-admin/pkg/log"
)

const CookieName = "ws_session"

type Env struct {
	Router *gin.Engine
	Store  session.Store
	MW     middleware.Middleware
}

// New returns an engine with the page templates loaded and an in-memory
// session store.
func New(t *testing.T) *Env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore(100, time.Hour)
	mw := middleware.New(log.NewNop(), store,
		config.SessionConfig{CookieName: CookieName, TTL: time.Hour},
		config.LoginConfig{RateLimitPerMin: 600})

	r := gin.New()
	tmpl, err := view.Templates()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	r.SetHTMLTemplate(tmpl)

	return &Env{Router: r, Store: store, MW: mw}
}

// Do sends a request signed in as a user holding role. A non-empty body is
// sent as JSON.
func (e *Env) Do(t *testing.T, role model.Role, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	s := session.New(model.User{ID: 1, Name: "Tester", Email: "tester@ws.test", Role: role}, "tok", time.Now())
	if err := e.Store.Save(context.Background(), s); err != nil {
		t.Fatalf("save session: %v", err)
	}

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: CookieName, Value: s.ID})

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}
