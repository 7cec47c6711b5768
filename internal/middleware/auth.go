package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/model"
	"workspace-admin/internal/session"
	"workspace-admin/pkg/backend"
	"workspace-admin/pkg/response"
)

const (
	scopeKey = "scope"
	pageKey  = "page"

	// DashboardPath is where users land after login or a role mismatch.
	DashboardPath = "/app/dashboard"
)

// Auth guards JSON routes. Requests without a live session get 401 with a
// redirect hint and their cookie cleared.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		mw.wrapWriter(c)

		s, err := mw.authenticate(c)
		if err != nil {
			response.Unauthorized(c, response.LoginPath)
			c.Abort()
			return
		}

		mw.attach(c, s)
		c.Next()
	}
}

// Page guards HTML routes. Requests without a live session are redirected to
// the login page.
func (mw Middleware) Page() gin.HandlerFunc {
	return func(c *gin.Context) {
		mw.wrapWriter(c)
		c.Set(pageKey, true)

		s, err := mw.authenticate(c)
		if err != nil {
			c.Redirect(http.StatusFound, response.LoginPath)
			c.Abort()
			return
		}

		mw.attach(c, s)
		c.Next()
	}
}

// RequireRole lets through only scopes holding one of roles. HTML routes fall
// back to the dashboard, JSON routes get 403.
func (mw Middleware) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if ok && sc.HasRole(roles...) {
			c.Next()
			return
		}

		if c.GetBool(pageKey) {
			c.Redirect(http.StatusFound, DashboardPath)
		} else {
			response.Forbidden(c)
		}
		c.Abort()
	}
}

// CurrentSession returns the live session of the request, if any. Used by
// public pages that behave differently for signed-in users.
func (mw Middleware) CurrentSession(c *gin.Context) (session.Session, bool) {
	s, err := mw.authenticate(c)
	if err != nil {
		return session.Session{}, false
	}
	return s, true
}

// GetScope returns the scope attached by Auth or Page.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

func (mw Middleware) authenticate(c *gin.Context) (session.Session, error) {
	ctx := c.Request.Context()

	id, err := c.Cookie(mw.cookie.CookieName)
	if err != nil || id == "" {
		return session.Session{}, session.ErrNotFound
	}

	s, err := mw.sessions.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) && !errors.Is(err, session.ErrExpired) {
			mw.l.Warnf(ctx, "middleware.authenticate: %v", err)
		}
		return session.Session{}, err
	}
	if !s.Authenticated || s.Token == "" {
		return session.Session{}, session.ErrNotFound
	}
	return s, nil
}

func (mw Middleware) attach(c *gin.Context, s session.Session) {
	c.Set(scopeKey, s.Scope())

	ctx := backend.WithToken(c.Request.Context(), s.Token)
	ctx = session.WithID(ctx, s.ID)
	c.Request = c.Request.WithContext(ctx)
}
