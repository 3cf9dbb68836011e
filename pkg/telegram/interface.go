package telegram

import "context"

// IBot is the subset of the Bot API the service relies on.
type IBot interface {
	SendMessage(chatID int64, text string) error
	SendMessageWithMode(chatID int64, text string, parseMode string) error
	GetFile(ctx context.Context, fileID string) (*File, error)
	DownloadFile(ctx context.Context, filePath string, maxBytes int64) ([]byte, error)
}

var _ IBot = (*Bot)(nil)
