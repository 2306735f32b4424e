package dialog

// Step представляет текущий шаг диалога записи занятия
type Step string

const (
	StepTeacher      Step = "teacher"
	StepStudent      Step = "student"
	StepDate         Step = "date"
	StepCustomDate   Step = "custom_date"
	StepPrice        Step = "price"
	StepStatus       Step = "status"
	StepConfirmation Step = "confirmation"
)

// Session — состояние одной незавершённой записи занятия.
// Поля заполняются строго в порядке шагов; сессия живёт только
// в памяти процесса и теряется при рестарте.
type Session struct {
	Step     Step
	Teacher  string
	Student  string
	Date     string // ДД.ММ.ГГГГ, как выбрано или введено
	Price    int
	PriceSet bool
	Occurred bool
}

// Complete проверяет, что все поля, нужные для отправки, заполнены
func (s *Session) Complete() bool {
	return s != nil && s.Teacher != "" && s.Student != "" && s.Date != "" && s.PriceSet
}

// EffectivePrice возвращает стоимость к записи: выбранный тариф,
// если занятие состоялось, иначе 0
func (s *Session) EffectivePrice() int {
	if s.Occurred {
		return s.Price
	}
	return 0
}
