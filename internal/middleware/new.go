package middleware

import (
	"time"

	"workspace-admin/config"
	"workspace-admin/internal/session"
	"workspace-admin/pkg/log"
)

type Middleware struct {
	l        log.Logger
	sessions session.Store
	cookie   config.SessionConfig
	limiter  *rateLimiter
	now      func() time.Time
}

func New(l log.Logger, sessions session.Store, cookieCfg config.SessionConfig, loginCfg config.LoginConfig) Middleware {
	if cookieCfg.CookieName == "" {
		cookieCfg.CookieName = session.CookieName
	}
	return Middleware{
		l:        l,
		sessions: sessions,
		cookie:   cookieCfg,
		limiter:  newRateLimiter(loginCfg.RateLimitPerMin),
		now:      time.Now,
	}
}
