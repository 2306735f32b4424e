package callbacks

import (
	"go.uber.org/zap"

	"github.com/rAtAtUY6/CoW-bot/internal/dialog"
)

// Handler содержит зависимости для обработки callback query
type Handler struct {
	flow   *dialog.Flow
	guard  *dialog.Guard
	logger *zap.Logger
}

// NewHandler создаёт обработчик callback query
func NewHandler(flow *dialog.Flow, guard *dialog.Guard, logger *zap.Logger) *Handler {
	return &Handler{
		flow:   flow,
		guard:  guard,
		logger: logger,
	}
}
