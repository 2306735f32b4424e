package keyboard

import (
	"github.com/go-telegram/bot/models"

	"github.com/rAtAtUY6/CoW-bot/internal/dialog"
)

// Builder упрощает создание inline клавиатур
type Builder struct {
	rows [][]models.InlineKeyboardButton
}

// NewBuilder создаёт новый builder клавиатуры
func NewBuilder() *Builder {
	return &Builder{
		rows: make([][]models.InlineKeyboardButton, 0),
	}
}

// Row добавляет новый ряд кнопок
func (b *Builder) Row(buttons ...models.InlineKeyboardButton) *Builder {
	if len(buttons) > 0 {
		b.rows = append(b.rows, buttons)
	}
	return b
}

// Build создаёт финальную клавиатуру
func (b *Builder) Build() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: b.rows,
	}
}

// Button создаёт кнопку
func Button(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// FromScreen раскладывает кнопки экрана по рядам согласно Screen.Columns.
// Экран без кнопок даёт пустую клавиатуру: нажимать становится нечего.
func FromScreen(screen dialog.Screen) *models.InlineKeyboardMarkup {
	columns := screen.Columns
	if columns < 1 {
		columns = 1
	}

	b := NewBuilder()
	row := make([]models.InlineKeyboardButton, 0, columns)
	for _, opt := range screen.Options {
		row = append(row, Button(opt.Label, opt.Data))
		if len(row) == columns {
			b.Row(row...)
			row = make([]models.InlineKeyboardButton, 0, columns)
		}
	}
	b.Row(row...)

	return b.Build()
}
