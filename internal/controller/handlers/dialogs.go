package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/rAtAtUY6/CoW-bot/internal/controller/keyboard"
)

// HandleTextMessage обрабатывает свободный текст.
// Сейчас единственный текстовый шаг диалога — ввод своей даты;
// все остальные сообщения (включая неизвестные команды) игнорируются.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	text := strings.TrimSpace(update.Message.Text)

	screen, handled := h.flow.EnterDate(telegramID, text)
	if !handled {
		return
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        screen.Text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard.FromScreen(screen),
	})
	if err != nil {
		h.logger.Error("Failed to send dialog reply",
			zap.Int64("chat_id", update.Message.Chat.ID),
			zap.Error(err))
	}
}
