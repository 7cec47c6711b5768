package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workspace-admin/internal/session"
	"workspace-admin/pkg/response"
)

// SetSessionCookie hands the session ID to the browser.
func (mw Middleware) SetSessionCookie(c *gin.Context, s session.Session) {
	maxAge := int(mw.cookie.TTL.Seconds())
	if !s.ExpiresAt.IsZero() {
		if left := int(s.ExpiresAt.Sub(mw.now()).Seconds()); left > 0 && (maxAge == 0 || left < maxAge) {
			maxAge = left
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(mw.cookie.CookieName, s.ID, maxAge, "/", mw.cookie.CookieDomain, mw.cookie.CookieSecure, true)
}

// ClearSessionCookie removes the session cookie from the browser.
func (mw Middleware) ClearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, mw.expiredCookie())
}

// SessionID returns the session ID sent by the browser.
func (mw Middleware) SessionID(c *gin.Context) string {
	id, _ := c.Cookie(mw.cookie.CookieName)
	return id
}

func (mw Middleware) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     mw.cookie.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   mw.cookie.CookieDomain,
		MaxAge:   -1,
		Secure:   mw.cookie.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// signOutWriter clears the session cookie on any response that sends the
// user back to the login page: a 401, or a redirect to the login path.
type signOutWriter struct {
	gin.ResponseWriter
	cookie *http.Cookie
}

func (w *signOutWriter) WriteHeader(code int) {
	if code == http.StatusUnauthorized || (code >= 300 && code < 400 && w.Header().Get("Location") == response.LoginPath) {
		http.SetCookie(w.ResponseWriter, w.cookie)
	}
	w.ResponseWriter.WriteHeader(code)
}

func (mw Middleware) wrapWriter(c *gin.Context) {
	if _, ok := c.Writer.(*signOutWriter); ok {
		return
	}
	c.Writer = &signOutWriter{ResponseWriter: c.Writer, cookie: mw.expiredCookie()}
}
