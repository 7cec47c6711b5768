package session

import (
	"time"

	"workspace-admin/internal/model"
)

// CookieName is the browser cookie holding the session ID.
const CookieName = "ws_session"

// Session is the persisted auth store: the current user and the backend token.
type Session struct {
	ID            string     `json:"id"`
	User          model.User `json:"user"`
	Token         string     `json:"token"`
	Authenticated bool       `json:"authenticated"`
	CreatedAt     time.Time  `json:"created_at"`
	ExpiresAt     time.Time  `json:"expires_at,omitempty"`
}

// Scope converts the session into a request scope.
func (s Session) Scope() model.Scope {
	return model.Scope{
		SessionID: s.ID,
		UserID:    s.User.ID,
		Name:      s.User.Name,
		Email:     s.User.Email,
		Role:      s.User.Role,
		Token:     s.Token,
	}
}

// Expired reports whether the backend token is known to be past its expiry.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
