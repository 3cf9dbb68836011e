package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"notes-to-tasks/internal/suggestion"
	pkgLog "notes-to-tasks/pkg/log"
	pkgTelegram "notes-to-tasks/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l              pkgLog.Logger
	uc             suggestion.UseCase
	bot            pkgTelegram.IBot
	processTimeout time.Duration
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc suggestion.UseCase, bot pkgTelegram.IBot) Handler {
	return &handler{
		l:              l,
		uc:             uc,
		bot:            bot,
		processTimeout: defaultProcessTimeout,
	}
}
