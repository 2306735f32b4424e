package model

// Record — итоговая запись об одном занятии, отправляемая в таблицу.
// Price здесь уже эффективная стоимость: 0, если занятие не состоялось.
type Record struct {
	Teacher  string
	Student  string
	Date     string // ДД.ММ.ГГГГ
	Price    int
	Occurred bool
}
