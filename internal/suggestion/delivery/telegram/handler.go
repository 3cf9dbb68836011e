package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"notes-to-tasks/internal/model"
	"notes-to-tasks/internal/suggestion"
	pkgLog "notes-to-tasks/pkg/log"
	pkgResponse "notes-to-tasks/pkg/response"
	pkgTelegram "notes-to-tasks/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine, since AI extraction can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	requestID := pkgLog.RequestIDFromContext(ctx)

	go func() {
		// Detached from the request context, which is cancelled once we respond.
		bgCtx, cancel := context.WithTimeout(pkgLog.WithRequestID(context.Background(), requestID), h.processTimeout)
		defer cancel()

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, messageFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	switch strings.TrimSpace(msg.Text) {
	case "/start":
		return h.bot.SendMessage(msg.Chat.ID, messageStart)
	case "/help":
		return h.bot.SendMessage(msg.Chat.ID, messageHelp)
	}

	sc := model.Scope{}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}

	var (
		output suggestion.SuggestOutput
		err    error
	)
	switch {
	case len(msg.Photo) > 0 || msg.Document != nil:
		h.notifyWorking(ctx, msg.Chat.ID)
		output, err = h.suggestFromPhoto(ctx, sc, msg)
	case strings.TrimSpace(msg.Text) != "":
		h.notifyWorking(ctx, msg.Chat.ID)
		output, err = h.uc.SuggestFromText(ctx, sc, suggestion.SuggestTextInput{Text: msg.Text})
	default:
		return h.bot.SendMessage(msg.Chat.ID, messageUnsupported)
	}
	if err != nil {
		return err
	}

	if len(output.Suggestions) == 0 {
		return h.bot.SendMessage(msg.Chat.ID, messageNoTasks)
	}
	return h.bot.SendMessage(msg.Chat.ID, formatSuggestions(output))
}

func (h *handler) notifyWorking(ctx context.Context, chatID int64) {
	if err := h.bot.SendMessage(chatID, messageWorking); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send ack message: %v", err)
	}
}

// suggestFromPhoto downloads the largest rendition of the photo, or an image
// document, and runs the image flow on it.
func (h *handler) suggestFromPhoto(ctx context.Context, sc model.Scope, msg *pkgTelegram.Message) (suggestion.SuggestOutput, error) {
	var fileID, mimeType string
	if p := msg.LargestPhoto(); p != nil {
		fileID = p.FileID
	} else {
		if msg.Document.MimeType != "" && !strings.HasPrefix(msg.Document.MimeType, "image/") {
			return suggestion.SuggestOutput{}, errNotAnImage
		}
		fileID, mimeType = msg.Document.FileID, msg.Document.MimeType
	}

	file, err := h.bot.GetFile(ctx, fileID)
	if err != nil {
		return suggestion.SuggestOutput{}, fmt.Errorf("bot.GetFile: %w", err)
	}

	image, err := h.bot.DownloadFile(ctx, file.FilePath, maxPhotoBytes)
	if err != nil {
		return suggestion.SuggestOutput{}, fmt.Errorf("bot.DownloadFile: %w", err)
	}

	return h.uc.SuggestFromImage(ctx, sc, suggestion.SuggestImageInput{Image: image, MimeType: mimeType})
}

func formatSuggestions(out suggestion.SuggestOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📝 Found %d task(s):\n\n", len(out.Suggestions))

	for i, s := range out.Suggestions {
		fmt.Fprintf(&sb, "%d. %s [%s]\n", i+1, s.Title, s.Priority)
		if s.DueDate != nil {
			fmt.Fprintf(&sb, "   📅 %s\n", s.DueDate.Format(dueDateLayout))
		}
		if len(s.Tags) > 0 {
			sb.WriteString("   🏷 #" + strings.Join(s.Tags, " #") + "\n")
		}
		if s.Description != "" {
			sb.WriteString("   " + s.Description + "\n")
		}
	}

	if out.Fallback {
		sb.WriteString("\n(suggested by keyword matching)")
	}
	return strings.TrimRight(sb.String(), "\n")
}
