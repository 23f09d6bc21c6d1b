package telegram

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/event"
	pkgLog "calendar-assistant/pkg/log"
	pkgTelegram "calendar-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc event.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
