package dialog

import (
	"fmt"
	"time"

	"github.com/rAtAtUY6/CoW-bot/internal/catalog"
)

// Идентификаторы триггеров в callback data
const (
	TriggerRecord = "record"

	PrefixTeacher = "teacher:"
	PrefixStudent = "student:"
	PrefixDate    = "date:"
	PrefixPrice   = "price:"

	DateCustom = "date:custom"
	StatusYes  = "status:yes"
	StatusNo   = "status:no"
	ConfirmYes = "confirm:yes"
	ConfirmNo  = "confirm:no"
)

// Option — одна кнопка экрана: подпись и идентификатор триггера
type Option struct {
	Label string
	Data  string
}

// Screen — результат перехода: текст сообщения и список кнопок.
// Columns задаёт раскладку кнопок по колонкам при отрисовке.
type Screen struct {
	Text    string
	Options []Option
	Columns int
}

// StartScreen — приветственный экран с кнопкой начала записи
func StartScreen() Screen {
	return Screen{
		Text:    "👋 Добро пожаловать в систему учёта занятий!\n\nНажмите кнопку ниже, чтобы начать.",
		Options: []Option{{Label: "📅 Записать занятие", Data: TriggerRecord}},
		Columns: 1,
	}
}

func teacherScreen(c *catalog.Catalog) Screen {
	options := make([]Option, 0, len(c.Teachers))
	for i, name := range c.Teachers {
		options = append(options, Option{Label: name, Data: fmt.Sprintf("%s%d", PrefixTeacher, i)})
	}
	return Screen{
		Text:    "👤 Выберите себя:",
		Options: options,
		Columns: 2,
	}
}

func studentScreen(teacher string, c *catalog.Catalog) Screen {
	options := make([]Option, 0, len(c.Students))
	for i, name := range c.Students {
		options = append(options, Option{Label: name, Data: fmt.Sprintf("%s%d", PrefixStudent, i)})
	}
	return Screen{
		Text:    fmt.Sprintf("✅ Преподаватель: <b>%s</b>\n\n👨‍🎓 Выберите ученика:", teacher),
		Options: options,
		Columns: 2,
	}
}

func dateScreen(student string, now time.Time) Screen {
	today := now.Format("02.01.2006")
	yesterday := now.AddDate(0, 0, -1).Format("02.01.2006")
	dayBefore := now.AddDate(0, 0, -2).Format("02.01.2006")

	return Screen{
		Text: fmt.Sprintf("✅ Ученик: <b>%s</b>\n\n📅 Выберите дату:", student),
		Options: []Option{
			{Label: fmt.Sprintf("📍 Сегодня (%s)", today), Data: PrefixDate + today},
			{Label: fmt.Sprintf("📍 Вчера (%s)", yesterday), Data: PrefixDate + yesterday},
			{Label: fmt.Sprintf("📍 Позавчера (%s)", dayBefore), Data: PrefixDate + dayBefore},
			{Label: "📝 Другая дата", Data: DateCustom},
		},
		Columns: 1,
	}
}

func customDateScreen() Screen {
	return Screen{
		Text: "📅 Введите дату:\n\n<b>ДД.ММ.ГГГГ</b>\n\nПример: <b>01.12.2025</b>",
	}
}

func badDateScreen() Screen {
	return Screen{
		Text: "❌ Неправильный формат! Используйте ДД.ММ.ГГГГ",
	}
}

func priceScreen(date string, c *catalog.Catalog) Screen {
	options := make([]Option, 0, len(c.Prices))
	for _, p := range c.Prices {
		options = append(options, Option{Label: p.Label, Data: fmt.Sprintf("%s%d", PrefixPrice, p.Value)})
	}
	return Screen{
		Text:    fmt.Sprintf("✅ Дата: <b>%s</b>\n\n💰 Выберите стоимость:", date),
		Options: options,
		Columns: 1,
	}
}

func statusScreen(price int) Screen {
	return Screen{
		Text: fmt.Sprintf("✅ Стоимость: <b>%d ₽</b>\n\nСостоялось ли занятие?", price),
		Options: []Option{
			{Label: "✅ Да", Data: StatusYes},
			{Label: "❌ Нет", Data: StatusNo},
		},
		Columns: 1,
	}
}

func confirmationScreen(s *Session) Screen {
	return Screen{
		Text: fmt.Sprintf(
			"<b>✅ Проверьте данные перед отправкой:</b>\n\n"+
				"👤 Преподаватель: <b>%s</b>\n"+
				"👨‍🎓 Ученик: <b>%s</b>\n"+
				"📅 Дата: <b>%s</b>\n"+
				"💰 Стоимость: <b>%d ₽</b>\n"+
				"📊 Статус: <b>%s</b>\n\n"+
				"Всё верно?",
			s.Teacher, s.Student, s.Date, s.EffectivePrice(), occurredLabel(s.Occurred)),
		Options: []Option{
			{Label: "✅ Да, отправить", Data: ConfirmYes},
			{Label: "❌ Отмена", Data: ConfirmNo},
		},
		Columns: 2,
	}
}

// submittingScreen намеренно без кнопок: пока идёт отправка,
// повторное подтверждение нажать нечем
func submittingScreen(s *Session) Screen {
	return Screen{
		Text: fmt.Sprintf(
			"⏳ <b>Отправка данных...</b>\n\n"+
				"👤 %s\n👨‍🎓 %s\n📅 %s\n💰 %d ₽\n\n"+
				"Пожалуйста, ждите...",
			s.Teacher, s.Student, s.Date, s.EffectivePrice()),
	}
}

func successScreen(s *Session) Screen {
	return Screen{
		Text: fmt.Sprintf(
			"<b>🎉 Данные успешно отправлены!</b>\n\n"+
				"👤 %s\n👨‍🎓 %s\n📅 %s\n💰 %d ₽\n📊 %s\n\n"+
				"Записано в таблицу! ✓",
			s.Teacher, s.Student, s.Date, s.EffectivePrice(), occurredLabel(s.Occurred)),
		Options: []Option{{Label: "📅 Новая запись", Data: TriggerRecord}},
		Columns: 1,
	}
}

func submitFailedScreen() Screen {
	return Screen{
		Text:    "❌ <b>Ошибка при отправке!</b>\n\nПроверьте подключение и попробуйте заново.",
		Options: []Option{{Label: "📅 Записать занятие", Data: TriggerRecord}},
		Columns: 1,
	}
}

func expiredScreen() Screen {
	return Screen{
		Text:    "❌ <b>Сеанс истёк!</b>\n\nДанные были потеряны. Начните заново!",
		Options: []Option{{Label: "📅 Записать занятие", Data: TriggerRecord}},
		Columns: 1,
	}
}

func cancelledScreen() Screen {
	return Screen{
		Text:    "❌ <b>Запись отменена.</b>\n\nВсе данные удалены. Начните заново!",
		Options: []Option{{Label: "📅 Записать занятие", Data: TriggerRecord}},
		Columns: 1,
	}
}

func occurredLabel(occurred bool) string {
	if occurred {
		return "✅ Состоялось"
	}
	return "❌ Не состоялось"
}
