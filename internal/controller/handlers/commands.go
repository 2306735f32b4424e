package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/rAtAtUY6/CoW-bot/internal/controller/keyboard"
	"github.com/rAtAtUY6/CoW-bot/internal/dialog"
)

const helpText = "📖 Справка:\n\n" +
	"1. Нажмите \"📅 Записать занятие\"\n" +
	"2. Выберите себя\n" +
	"3. Выберите ученика\n" +
	"4. Выберите дату\n" +
	"5. Выберите стоимость\n" +
	"6. Подтвердите статус\n" +
	"7. Проверьте данные и подтвердите\n\n" +
	"Данные автоматически запишутся в таблицу!"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.logger.Info("New user started the bot",
		zap.Int64("telegram_id", update.Message.From.ID),
		zap.String("name", update.Message.From.FirstName))

	screen := dialog.StartScreen()

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        screen.Text,
		ReplyMarkup: keyboard.FromScreen(screen),
	})
	if err != nil {
		h.logger.Error("Failed to send welcome message",
			zap.Int64("chat_id", update.Message.Chat.ID),
			zap.Error(err))
	}
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.logger.Info("User requested help",
		zap.Int64("telegram_id", update.Message.From.ID))

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   helpText,
	})
	if err != nil {
		h.logger.Error("Failed to send help message",
			zap.Int64("chat_id", update.Message.Chat.ID),
			zap.Error(err))
	}
}
