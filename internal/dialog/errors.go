package dialog

import "errors"

// Ошибки переходов диалога
var (
	// ErrInvalidSelection — индекс или значение вне каталога;
	// сессия сохраняется, шаг показывается заново
	ErrInvalidSelection = errors.New("selection outside catalog bounds")

	// ErrSessionCorrupted — сессии нет или обязательные поля потеряны;
	// сессия уничтожается, пользователю предлагается начать заново
	ErrSessionCorrupted = errors.New("session missing or incomplete")

	// ErrSubmissionFailed — внешняя отправка не удалась;
	// сессия уничтожена, повторная отправка не выполняется
	ErrSubmissionFailed = errors.New("record submission failed")
)
