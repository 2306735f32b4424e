package callbacks

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/rAtAtUY6/CoW-bot/internal/dialog"
)

const busyNotice = "⏳ Подождите, данные обрабатываются..."

// HandleCallbackQuery распределяет нажатия кнопок по переходам диалога.
// Каждый переход выполняется под single-flight защитой: повторное нажатие
// того же действия до завершения первого получает только уведомление.
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	data := callback.Data
	telegramID := callback.From.ID

	h.logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("telegram_id", telegramID))

	switch {
	case data == dialog.TriggerRecord:
		h.run(ctx, b, callback, dialog.ActionRecord, func() (dialog.Screen, error) {
			return h.flow.Begin(telegramID), nil
		})

	case strings.HasPrefix(data, dialog.PrefixTeacher):
		index, err := indexFrom(data, dialog.PrefixTeacher)
		if err != nil {
			h.badCallback(ctx, b, callback, err)
			return
		}
		h.run(ctx, b, callback, dialog.ActionTeacherSelect, func() (dialog.Screen, error) {
			return h.flow.SelectTeacher(telegramID, index)
		})

	case strings.HasPrefix(data, dialog.PrefixStudent):
		index, err := indexFrom(data, dialog.PrefixStudent)
		if err != nil {
			h.badCallback(ctx, b, callback, err)
			return
		}
		h.run(ctx, b, callback, dialog.ActionStudentSelect, func() (dialog.Screen, error) {
			return h.flow.SelectStudent(telegramID, index)
		})

	case data == dialog.DateCustom:
		h.run(ctx, b, callback, dialog.ActionDateSelect, func() (dialog.Screen, error) {
			return h.flow.ChooseCustomDate(telegramID)
		})

	case strings.HasPrefix(data, dialog.PrefixDate):
		date := strings.TrimPrefix(data, dialog.PrefixDate)
		h.run(ctx, b, callback, dialog.ActionDateSelect, func() (dialog.Screen, error) {
			return h.flow.SelectDate(telegramID, date)
		})

	case strings.HasPrefix(data, dialog.PrefixPrice):
		value, err := indexFrom(data, dialog.PrefixPrice)
		if err != nil {
			h.badCallback(ctx, b, callback, err)
			return
		}
		h.run(ctx, b, callback, dialog.ActionPriceSelect, func() (dialog.Screen, error) {
			return h.flow.SelectPrice(telegramID, value)
		})

	case data == dialog.StatusYes || data == dialog.StatusNo:
		occurred := data == dialog.StatusYes
		h.run(ctx, b, callback, dialog.ActionStatusSelect, func() (dialog.Screen, error) {
			return h.flow.SetOccurred(telegramID, occurred)
		})

	case data == dialog.ConfirmYes:
		h.runConfirm(ctx, b, callback)

	case data == dialog.ConfirmNo:
		h.run(ctx, b, callback, dialog.ActionCancel, func() (dialog.Screen, error) {
			return h.flow.Cancel(telegramID), nil
		})

	default:
		h.logger.Warn("Unknown callback",
			zap.String("data", data),
			zap.Int64("telegram_id", telegramID))
		h.answer(ctx, b, callback.ID, "")
	}
}

// run выполняет переход под защитой от двойных кликов и отрисовывает экран
func (h *Handler) run(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, action string, transition func() (dialog.Screen, error)) {
	executed := h.guard.Do(callback.From.ID, action, func() {
		h.answer(ctx, b, callback.ID, "")

		screen, err := transition()
		if err != nil {
			h.logger.Warn("Transition rejected",
				zap.String("action", action),
				zap.Int64("telegram_id", callback.From.ID),
				zap.Error(err))
		}
		h.render(ctx, b, callback, screen)
	})

	if !executed {
		h.answer(ctx, b, callback.ID, busyNotice)
	}
}

// runConfirm — отдельный путь для подтверждения: перед обращением к таблице
// показывается промежуточный экран без кнопок, защита снимается только
// после ответа внешнего вызова
func (h *Handler) runConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	telegramID := callback.From.ID

	executed := h.guard.Do(telegramID, dialog.ActionConfirm, func() {
		h.answer(ctx, b, callback.ID, "")

		screen, err := h.flow.Confirm(ctx, telegramID, func(interim dialog.Screen) {
			h.render(ctx, b, callback, interim)
		})
		if err != nil {
			h.logger.Warn("Confirmation failed",
				zap.Int64("telegram_id", telegramID),
				zap.Error(err))
		}
		h.render(ctx, b, callback, screen)
	})

	if !executed {
		h.answer(ctx, b, callback.ID, busyNotice)
	}
}

func (h *Handler) badCallback(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, err error) {
	h.logger.Error("Failed to parse callback data",
		zap.String("data", callback.Data),
		zap.Int64("telegram_id", callback.From.ID),
		zap.Error(err))

	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callback.ID,
		Text:            "❌ Неверный формат",
		ShowAlert:       true,
	})
}

// indexFrom извлекает числовую часть callback data после префикса
func indexFrom(data, prefix string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(data, prefix))
}
