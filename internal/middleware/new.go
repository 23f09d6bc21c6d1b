package middleware

import (
	"calendar-assistant/config"
	pkgLog "calendar-assistant/pkg/log"
)

// Middleware bundles the HTTP middlewares used by the server.
type Middleware struct {
	l           pkgLog.Logger
	config      *config.Config
	rateLimiter *rateLimiter
}

func New(l pkgLog.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:           l,
		config:      cfg,
		rateLimiter: newRateLimiter(cfg.Webhook.RateLimitPerMin),
	}
}
