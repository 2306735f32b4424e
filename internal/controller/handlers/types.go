package handlers

import (
	"go.uber.org/zap"

	"github.com/rAtAtUY6/CoW-bot/internal/dialog"
)

// Handlers содержит зависимости для обработки команд и текстовых сообщений
type Handlers struct {
	flow   *dialog.Flow
	logger *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(flow *dialog.Flow, logger *zap.Logger) *Handlers {
	return &Handlers{
		flow:   flow,
		logger: logger,
	}
}
