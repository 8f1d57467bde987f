package telegramimpl

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// captionLimit is Telegram's maximum photo caption length.
const captionLimit = 1024

// SendMessageToUser sends a text message to the configured user
func (tg *TelegramImpl) SendMessageToUser(ctx context.Context, text string) {
	if !tg.enabled() || ctx.Err() != nil {
		return
	}

	msg := tgbotapi.NewMessage(tg.UserID, text)
	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message to user",
			"userID", tg.UserID,
			"error", err)
		return
	}

	tg.Logger.Debug("Message sent to user", "userID", tg.UserID)
}

// SendImageToUser uploads png as a photo with caption
func (tg *TelegramImpl) SendImageToUser(ctx context.Context, caption string, png []byte) {
	if !tg.enabled() || ctx.Err() != nil {
		return
	}
	if len(png) == 0 {
		tg.SendMessageToUser(ctx, caption)
		return
	}

	photo := tgbotapi.NewPhoto(tg.UserID, tgbotapi.FileBytes{Name: "post.png", Bytes: png})
	photo.Caption = truncate(caption, captionLimit)
	if _, err := tg.TgBot.Send(photo); err != nil {
		tg.Logger.Error("Error sending image to user",
			"userID", tg.UserID,
			"size", len(png),
			"error", err)
		return
	}

	tg.Logger.Debug("Image sent to user", "userID", tg.UserID)
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
