package dialog

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/rAtAtUY6/CoW-bot/internal/catalog"
	"github.com/rAtAtUY6/CoW-bot/internal/model"
)

// Ровно две цифры, точка, две цифры, точка, четыре цифры.
// Календарная корректность не проверяется.
var dateRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// Submitter отправляет подтверждённую запись во внешнее хранилище
type Submitter interface {
	Submit(ctx context.Context, rec model.Record) error
}

// Flow — конечный автомат диалога записи занятия.
// Каждый переход возвращает экран для показа пользователю; при ошибке
// экран содержит понятный следующий шаг (повтор выбора или рестарт).
type Flow struct {
	store     *Store
	catalog   *catalog.Catalog
	submitter Submitter
	logger    *zap.Logger
	now       func() time.Time
}

// NewFlow создаёт конечный автомат диалога
func NewFlow(store *Store, cat *catalog.Catalog, submitter Submitter, logger *zap.Logger) *Flow {
	return &Flow{
		store:     store,
		catalog:   cat,
		submitter: submitter,
		logger:    logger,
		now:       time.Now,
	}
}

// Begin начинает новую запись занятия, отбрасывая незавершённую сессию
func (f *Flow) Begin(telegramID int64) Screen {
	f.store.Put(telegramID, &Session{Step: StepTeacher})

	f.logger.Info("Recording started", zap.Int64("telegram_id", telegramID))

	return teacherScreen(f.catalog)
}

// SelectTeacher обрабатывает выбор преподавателя по индексу каталога
func (f *Flow) SelectTeacher(telegramID int64, index int) (Screen, error) {
	sess := f.store.Get(telegramID)
	if sess == nil {
		return f.corrupted(telegramID, "teacher selection without session")
	}

	name, ok := f.catalog.TeacherAt(index)
	if !ok {
		f.logger.Warn("Teacher index out of bounds",
			zap.Int64("telegram_id", telegramID),
			zap.Int("index", index))
		return teacherScreen(f.catalog), ErrInvalidSelection
	}

	sess.Teacher = name
	sess.Step = StepStudent

	f.logger.Info("Teacher selected",
		zap.Int64("telegram_id", telegramID),
		zap.String("teacher", name))

	return studentScreen(name, f.catalog), nil
}

// SelectStudent обрабатывает выбор ученика по индексу каталога
func (f *Flow) SelectStudent(telegramID int64, index int) (Screen, error) {
	sess := f.store.Get(telegramID)
	if sess == nil || sess.Teacher == "" {
		return f.corrupted(telegramID, "student selection without teacher")
	}

	name, ok := f.catalog.StudentAt(index)
	if !ok {
		f.logger.Warn("Student index out of bounds",
			zap.Int64("telegram_id", telegramID),
			zap.Int("index", index))
		return studentScreen(sess.Teacher, f.catalog), ErrInvalidSelection
	}

	sess.Student = name
	sess.Step = StepDate

	f.logger.Info("Student selected",
		zap.Int64("telegram_id", telegramID),
		zap.String("student", name))

	return dateScreen(name, f.now()), nil
}

// SelectDate обрабатывает выбор одной из предложенных дат.
// Значение сохраняется как есть — кнопки формируются нами же.
func (f *Flow) SelectDate(telegramID int64, date string) (Screen, error) {
	sess := f.store.Get(telegramID)
	if sess == nil || sess.Student == "" {
		return f.corrupted(telegramID, "date selection without student")
	}

	sess.Date = date
	sess.Step = StepPrice

	f.logger.Info("Date selected",
		zap.Int64("telegram_id", telegramID),
		zap.String("date", date))

	return priceScreen(date, f.catalog), nil
}

// ChooseCustomDate переводит диалог в режим ввода даты текстом
func (f *Flow) ChooseCustomDate(telegramID int64) (Screen, error) {
	sess := f.store.Get(telegramID)
	if sess == nil || sess.Student == "" {
		return f.corrupted(telegramID, "custom date without student")
	}

	sess.Step = StepCustomDate

	f.logger.Info("Custom date entry requested", zap.Int64("telegram_id", telegramID))

	return customDateScreen(), nil
}

// EnterDate обрабатывает текстовое сообщение с датой.
// Возвращает handled=false, если пользователь сейчас не вводит дату, —
// такое сообщение диалог не интересует.
func (f *Flow) EnterDate(telegramID int64, text string) (Screen, bool) {
	sess := f.store.Get(telegramID)
	if sess == nil || sess.Step != StepCustomDate {
		return Screen{}, false
	}

	if !dateRe.MatchString(text) {
		f.logger.Warn("Malformed custom date",
			zap.Int64("telegram_id", telegramID),
			zap.String("input", text))
		// Остаёмся на том же шаге, введённые ранее поля не трогаем
		return badDateScreen(), true
	}

	sess.Date = text
	sess.Step = StepPrice

	f.logger.Info("Custom date entered",
		zap.Int64("telegram_id", telegramID),
		zap.String("date", text))

	return priceScreen(text, f.catalog), true
}

// SelectPrice обрабатывает выбор тарифа по значению стоимости
func (f *Flow) SelectPrice(telegramID int64, value int) (Screen, error) {
	sess := f.store.Get(telegramID)
	if sess == nil || sess.Date == "" {
		return f.corrupted(telegramID, "price selection without date")
	}

	price, ok := f.catalog.PriceByValue(value)
	if !ok {
		f.logger.Warn("Unknown price value",
			zap.Int64("telegram_id", telegramID),
			zap.Int("value", value))
		return priceScreen(sess.Date, f.catalog), ErrInvalidSelection
	}

	sess.Price = price.Value
	sess.PriceSet = true
	sess.Step = StepStatus

	f.logger.Info("Price selected",
		zap.Int64("telegram_id", telegramID),
		zap.Int("price", price.Value))

	return statusScreen(price.Value), nil
}

// SetOccurred фиксирует, состоялось ли занятие, и показывает итоговый экран
func (f *Flow) SetOccurred(telegramID int64, occurred bool) (Screen, error) {
	sess := f.store.Get(telegramID)
	if !sess.Complete() {
		return f.corrupted(telegramID, "status with incomplete session")
	}

	sess.Occurred = occurred
	sess.Step = StepConfirmation

	f.logger.Info("Status selected",
		zap.Int64("telegram_id", telegramID),
		zap.Bool("occurred", occurred))

	return confirmationScreen(sess), nil
}

// Confirm отправляет запись. Перед отправкой show получает промежуточный
// экран без кнопок; переход завершается только после ответа внешнего
// хранилища. Сессия уничтожается при любом исходе, повторная отправка
// не выполняется.
func (f *Flow) Confirm(ctx context.Context, telegramID int64, show func(Screen)) (Screen, error) {
	sess := f.store.Get(telegramID)
	if !sess.Complete() {
		return f.corrupted(telegramID, "confirm with incomplete session")
	}

	if show != nil {
		show(submittingScreen(sess))
	}

	rec := model.Record{
		Teacher:  sess.Teacher,
		Student:  sess.Student,
		Date:     sess.Date,
		Price:    sess.EffectivePrice(),
		Occurred: sess.Occurred,
	}

	err := f.submitter.Submit(ctx, rec)
	f.store.Delete(telegramID)

	if err != nil {
		f.logger.Error("Record submission failed",
			zap.Int64("telegram_id", telegramID),
			zap.String("teacher", rec.Teacher),
			zap.String("student", rec.Student),
			zap.String("date", rec.Date),
			zap.Error(err))
		return submitFailedScreen(), fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	f.logger.Info("Record submitted",
		zap.Int64("telegram_id", telegramID),
		zap.String("teacher", rec.Teacher),
		zap.String("student", rec.Student),
		zap.String("date", rec.Date),
		zap.Int("price", rec.Price),
		zap.Bool("occurred", rec.Occurred))

	return successScreen(sess), nil
}

// Cancel безусловно отменяет запись и удаляет сессию
func (f *Flow) Cancel(telegramID int64) Screen {
	f.store.Delete(telegramID)

	f.logger.Info("Recording cancelled", zap.Int64("telegram_id", telegramID))

	return cancelledScreen()
}

// corrupted уничтожает частичную сессию и предлагает начать заново
func (f *Flow) corrupted(telegramID int64, reason string) (Screen, error) {
	f.store.Delete(telegramID)

	f.logger.Warn("Session corrupted",
		zap.Int64("telegram_id", telegramID),
		zap.String("reason", reason))

	return expiredScreen(), ErrSessionCorrupted
}
