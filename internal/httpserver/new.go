package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	tgDelivery "calendar-assistant/internal/event/delivery/telegram"
	"calendar-assistant/internal/middleware"
	pkgLog "calendar-assistant/pkg/log"
	pkgTelegram "calendar-assistant/pkg/telegram"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	middleware middleware.Middleware

	telegramHandler tgDelivery.Handler
	bot             *pkgTelegram.Bot
	webhookURL      string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	TelegramHandler tgDelivery.Handler
	Bot             *pkgTelegram.Bot
	WebhookURL      string
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		middleware:      cfg.Middleware,
		telegramHandler: cfg.TelegramHandler,
		bot:             cfg.Bot,
		webhookURL:      cfg.WebhookURL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
