package dialog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rAtAtUY6/CoW-bot/internal/catalog"
	"github.com/rAtAtUY6/CoW-bot/internal/model"
)

type fakeSubmitter struct {
	calls []model.Record
	err   error
}

func (f *fakeSubmitter) Submit(_ context.Context, rec model.Record) error {
	f.calls = append(f.calls, rec)
	return f.err
}

func newTestFlow(sub Submitter) *Flow {
	f := NewFlow(NewStore(), catalog.Default(), sub, zap.NewNop())
	f.now = func() time.Time {
		return time.Date(2025, time.December, 1, 12, 0, 0, 0, time.Local)
	}
	return f
}

const userID int64 = 42

// advanceTo проводит сессию по прямому пути до нужного места
func advanceTo(t *testing.T, f *Flow, date string) {
	t.Helper()

	f.Begin(userID)
	_, err := f.SelectTeacher(userID, 1)
	require.NoError(t, err)
	_, err = f.SelectStudent(userID, 2)
	require.NoError(t, err)
	_, err = f.SelectDate(userID, date)
	require.NoError(t, err)
	_, err = f.SelectPrice(userID, 700)
	require.NoError(t, err)
}

func TestFullFlowSubmitsChosenValues(t *testing.T) {
	sub := &fakeSubmitter{}
	f := newTestFlow(sub)

	advanceTo(t, f, "01.12.2025")
	_, err := f.SetOccurred(userID, true)
	require.NoError(t, err)

	screen, err := f.Confirm(context.Background(), userID, nil)
	require.NoError(t, err)
	assert.Contains(t, screen.Text, "успешно")

	require.Len(t, sub.calls, 1)
	assert.Equal(t, model.Record{
		Teacher:  "Саша",
		Student:  "Софа",
		Date:     "01.12.2025",
		Price:    700,
		Occurred: true,
	}, sub.calls[0])

	// Сессия уничтожена после успешной отправки
	assert.Nil(t, f.store.Get(userID))
}

func TestNotOccurredSubmitsZeroPrice(t *testing.T) {
	sub := &fakeSubmitter{}
	f := newTestFlow(sub)

	advanceTo(t, f, "01.12.2025")
	_, err := f.SetOccurred(userID, false)
	require.NoError(t, err)

	_, err = f.Confirm(context.Background(), userID, nil)
	require.NoError(t, err)

	require.Len(t, sub.calls, 1)
	assert.Equal(t, 0, sub.calls[0].Price)
	assert.False(t, sub.calls[0].Occurred)
}

func TestConfirmationScreenShowsEffectivePrice(t *testing.T) {
	f := newTestFlow(&fakeSubmitter{})

	advanceTo(t, f, "01.12.2025")
	screen, err := f.SetOccurred(userID, false)
	require.NoError(t, err)

	assert.Contains(t, screen.Text, "0 ₽")
	assert.Contains(t, screen.Text, "Не состоялось")
	require.Len(t, screen.Options, 2)
	assert.Equal(t, ConfirmYes, screen.Options[0].Data)
	assert.Equal(t, ConfirmNo, screen.Options[1].Data)
}

func TestDateScreenOffersThreeDatesAndCustom(t *testing.T) {
	f := newTestFlow(&fakeSubmitter{})

	f.Begin(userID)
	_, err := f.SelectTeacher(userID, 0)
	require.NoError(t, err)
	screen, err := f.SelectStudent(userID, 0)
	require.NoError(t, err)

	require.Len(t, screen.Options, 4)
	assert.Equal(t, PrefixDate+"01.12.2025", screen.Options[0].Data)
	assert.Equal(t, PrefixDate+"30.11.2025", screen.Options[1].Data)
	assert.Equal(t, PrefixDate+"29.11.2025", screen.Options[2].Data)
	assert.Equal(t, DateCustom, screen.Options[3].Data)
}

func TestCustomDatePatternOnlyValidation(t *testing.T) {
	// 31.02.2025 — календарно невозможная дата, но шаблон соблюдён
	sub := &fakeSubmitter{}
	f := newTestFlow(sub)

	f.Begin(userID)
	_, err := f.SelectTeacher(userID, 0)
	require.NoError(t, err)
	_, err = f.SelectStudent(userID, 0)
	require.NoError(t, err)
	_, err = f.ChooseCustomDate(userID)
	require.NoError(t, err)

	screen, handled := f.EnterDate(userID, "31.02.2025")
	assert.True(t, handled)
	assert.Contains(t, screen.Text, "стоимость")

	_, err = f.SelectPrice(userID, 1000)
	require.NoError(t, err)
	_, err = f.SetOccurred(userID, true)
	require.NoError(t, err)
	_, err = f.Confirm(context.Background(), userID, nil)
	require.NoError(t, err)

	require.Len(t, sub.calls, 1)
	assert.Equal(t, "31.02.2025", sub.calls[0].Date)
}

func TestMalformedCustomDateKeepsSession(t *testing.T) {
	f := newTestFlow(&fakeSubmitter{})

	f.Begin(userID)
	_, err := f.SelectTeacher(userID, 0)
	require.NoError(t, err)
	_, err = f.SelectStudent(userID, 1)
	require.NoError(t, err)
	_, err = f.ChooseCustomDate(userID)
	require.NoError(t, err)

	screen, handled := f.EnterDate(userID, "1.2.2025")
	assert.True(t, handled)
	assert.Contains(t, screen.Text, "Неправильный формат")

	// Прежние поля не тронуты, шаг не сдвинулся
	sess := f.store.Get(userID)
	require.NotNil(t, sess)
	assert.Equal(t, StepCustomDate, sess.Step)
	assert.Equal(t, "Босс", sess.Teacher)
	assert.Equal(t, "Даша", sess.Student)
	assert.Empty(t, sess.Date)

	// Корректный повторный ввод продолжает диалог
	_, handled = f.EnterDate(userID, "05.03.2025")
	assert.True(t, handled)
	assert.Equal(t, "05.03.2025", f.store.Get(userID).Date)
}

func TestTextIgnoredOutsideCustomDateStep(t *testing.T) {
	f := newTestFlow(&fakeSubmitter{})

	_, handled := f.EnterDate(userID, "01.12.2025")
	assert.False(t, handled)

	f.Begin(userID)
	_, handled = f.EnterDate(userID, "01.12.2025")
	assert.False(t, handled)
}

func TestConfirmWithoutSession(t *testing.T) {
	sub := &fakeSubmitter{}
	f := newTestFlow(sub)

	screen, err := f.Confirm(context.Background(), userID, nil)
	assert.ErrorIs(t, err, ErrSessionCorrupted)
	assert.Empty(t, sub.calls)

	// Экран предлагает начать заново
	require.Len(t, screen.Options, 1)
	assert.Equal(t, TriggerRecord, screen.Options[0].Data)
}

func TestSubmissionFailureDestroysSessionWithoutRetry(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("quota exceeded")}
	f := newTestFlow(sub)

	advanceTo(t, f, "01.12.2025")
	_, err := f.SetOccurred(userID, true)
	require.NoError(t, err)

	screen, err := f.Confirm(context.Background(), userID, nil)
	assert.ErrorIs(t, err, ErrSubmissionFailed)
	assert.Contains(t, screen.Text, "Ошибка при отправке")
	require.Len(t, screen.Options, 1)
	assert.Equal(t, TriggerRecord, screen.Options[0].Data)

	assert.Len(t, sub.calls, 1)
	assert.Nil(t, f.store.Get(userID))

	// Повторное подтверждение ведёт себя как без сессии: отправки нет
	_, err = f.Confirm(context.Background(), userID, nil)
	assert.ErrorIs(t, err, ErrSessionCorrupted)
	assert.Len(t, sub.calls, 1)
}

func TestCancelDestroysSession(t *testing.T) {
	sub := &fakeSubmitter{}
	f := newTestFlow(sub)

	advanceTo(t, f, "01.12.2025")
	_, err := f.SetOccurred(userID, true)
	require.NoError(t, err)

	screen := f.Cancel(userID)
	assert.Contains(t, screen.Text, "отменена")
	assert.Nil(t, f.store.Get(userID))

	// Повторный confirm после отмены — как будто сессии не было
	_, err = f.Confirm(context.Background(), userID, nil)
	assert.ErrorIs(t, err, ErrSessionCorrupted)
	assert.Empty(t, sub.calls)
}

func TestConfirmShowsInterimScreenBeforeSubmit(t *testing.T) {
	var order []string
	sub := &fakeSubmitter{}
	f := newTestFlow(&orderedSubmitter{inner: sub, order: &order})

	advanceTo(t, f, "01.12.2025")
	_, err := f.SetOccurred(userID, true)
	require.NoError(t, err)

	_, err = f.Confirm(context.Background(), userID, func(interim Screen) {
		order = append(order, "interim")
		assert.Contains(t, interim.Text, "Отправка данных")
		assert.Empty(t, interim.Options)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"interim", "submit"}, order)
}

type orderedSubmitter struct {
	inner *fakeSubmitter
	order *[]string
}

func (o *orderedSubmitter) Submit(ctx context.Context, rec model.Record) error {
	*o.order = append(*o.order, "submit")
	return o.inner.Submit(ctx, rec)
}

func TestInvalidTeacherIndexReprompts(t *testing.T) {
	f := newTestFlow(&fakeSubmitter{})

	f.Begin(userID)
	screen, err := f.SelectTeacher(userID, 99)
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.Contains(t, screen.Text, "Выберите себя")

	// Сессия жива, преподаватель не записан
	sess := f.store.Get(userID)
	require.NotNil(t, sess)
	assert.Empty(t, sess.Teacher)

	_, err = f.SelectTeacher(userID, -1)
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestUnknownPriceValueReprompts(t *testing.T) {
	f := newTestFlow(&fakeSubmitter{})

	f.Begin(userID)
	_, err := f.SelectTeacher(userID, 0)
	require.NoError(t, err)
	_, err = f.SelectStudent(userID, 0)
	require.NoError(t, err)
	_, err = f.SelectDate(userID, "01.12.2025")
	require.NoError(t, err)

	screen, err := f.SelectPrice(userID, 999)
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.Contains(t, screen.Text, "Выберите стоимость")

	sess := f.store.Get(userID)
	require.NotNil(t, sess)
	assert.False(t, sess.PriceSet)
}

func TestSelectionWithoutSession(t *testing.T) {
	f := newTestFlow(&fakeSubmitter{})

	_, err := f.SelectTeacher(userID, 0)
	assert.ErrorIs(t, err, ErrSessionCorrupted)

	_, err = f.SelectStudent(userID, 0)
	assert.ErrorIs(t, err, ErrSessionCorrupted)

	_, err = f.SelectPrice(userID, 1000)
	assert.ErrorIs(t, err, ErrSessionCorrupted)
}

func TestStatusWithIncompleteSession(t *testing.T) {
	f := newTestFlow(&fakeSubmitter{})

	// Сессия без стоимости — прямое повреждение состояния
	f.store.Put(userID, &Session{
		Step:    StepStatus,
		Teacher: "Босс",
		Student: "Глеб",
		Date:    "01.12.2025",
	})

	screen, err := f.SetOccurred(userID, true)
	assert.ErrorIs(t, err, ErrSessionCorrupted)
	assert.Contains(t, screen.Text, "Начните заново")
	assert.Nil(t, f.store.Get(userID))
}

func TestBeginDiscardsPreviousSession(t *testing.T) {
	f := newTestFlow(&fakeSubmitter{})

	advanceTo(t, f, "01.12.2025")
	f.Begin(userID)

	sess := f.store.Get(userID)
	require.NotNil(t, sess)
	assert.Equal(t, StepTeacher, sess.Step)
	assert.Empty(t, sess.Teacher)
	assert.False(t, sess.PriceSet)
}
