package callbacks

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/rAtAtUY6/CoW-bot/internal/controller/keyboard"
	"github.com/rAtAtUY6/CoW-bot/internal/dialog"
)

// answer отвечает на callback query (без alert)
func (h *Handler) answer(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// render редактирует исходное сообщение под новый экран
func (h *Handler) render(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, screen dialog.Screen) {
	msg := messageFromCallback(callback)
	if msg == nil {
		h.logger.Warn("No message in callback",
			zap.Int64("telegram_id", callback.From.ID))
		return
	}

	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        screen.Text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard.FromScreen(screen),
	})

	// "message is not modified" — не настоящая ошибка
	if err != nil && !isMessageNotModified(err) {
		h.logger.Error("Failed to edit message",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.Int("message_id", msg.ID),
			zap.Error(err))
	}
}

// messageFromCallback извлекает сообщение из callback query
func messageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

func isMessageNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
