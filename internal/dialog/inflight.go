package dialog

import (
	"sync"
)

// Названия действий для single-flight защиты.
// Защита действует на пару (пользователь, действие): пользователь,
// у которого «висит» подтверждение, не блокируется в других действиях.
const (
	ActionRecord        = "record"
	ActionTeacherSelect = "teacher_select"
	ActionStudentSelect = "student_select"
	ActionDateSelect    = "date_select"
	ActionPriceSelect   = "price_select"
	ActionStatusSelect  = "status_select"
	ActionConfirm       = "confirm"
	ActionCancel        = "cancel"
)

type inflightKey struct {
	telegramID int64
	action     string
}

// Guard не допускает повторный запуск того же действия пользователя,
// пока предыдущий запуск ещё обрабатывается (защита от двойного клика)
type Guard struct {
	mu     sync.Mutex
	active map[inflightKey]bool
}

// NewGuard создаёт новую single-flight защиту
func NewGuard() *Guard {
	return &Guard{
		active: make(map[inflightKey]bool),
	}
}

// Do выполняет fn, если действие сейчас не обрабатывается.
// Возвращает false без выполнения fn, если действие уже в работе.
// Флаг снимается на любом пути выхода из fn, включая panic.
func (g *Guard) Do(telegramID int64, action string, fn func()) bool {
	key := inflightKey{telegramID: telegramID, action: action}

	g.mu.Lock()
	if g.active[key] {
		g.mu.Unlock()
		return false
	}
	g.active[key] = true
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.active, key)
		g.mu.Unlock()
	}()

	fn()
	return true
}
