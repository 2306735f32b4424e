package catalog

// Price — один тариф занятия
type Price struct {
	Label string
	Value int
}

// Catalog содержит неизменяемые списки для выбора в диалоге.
// Списки заполняются один раз при старте процесса и дальше только читаются.
type Catalog struct {
	Teachers []string
	Students []string
	Prices   []Price
}

// Default возвращает каталог с рабочими списками преподавателей,
// учеников и тарифов
func Default() *Catalog {
	return &Catalog{
		Teachers: []string{"Босс", "Саша", "Артём", "Наташа", "Олеся", "Никита"},
		Students: []string{
			"Глеб", "Даша", "Софа", "Акбар", "Маша", "Милена", "Глеб мск",
			"Андрей", "Набережных", "Полушкина", "Тимур", "Таня", "Злата",
			"Святослав", "Лиза", "Ксюша", "Ярослав", "Саша", "Эми", "Ева",
			"Арсентий",
		},
		Prices: []Price{
			{Label: "1000 ₽", Value: 1000},
			{Label: "700 ₽", Value: 700},
			{Label: "600 ₽", Value: 600},
		},
	}
}

// TeacherAt возвращает преподавателя по индексу из callback
func (c *Catalog) TeacherAt(index int) (string, bool) {
	if index < 0 || index >= len(c.Teachers) {
		return "", false
	}
	return c.Teachers[index], true
}

// StudentAt возвращает ученика по индексу из callback
func (c *Catalog) StudentAt(index int) (string, bool) {
	if index < 0 || index >= len(c.Students) {
		return "", false
	}
	return c.Students[index], true
}

// PriceByValue ищет тариф по значению стоимости.
// Поиск по значению, а не по индексу: callback остаётся корректным
// даже при изменении порядка тарифов.
func (c *Catalog) PriceByValue(value int) (Price, bool) {
	for _, p := range c.Prices {
		if p.Value == value {
			return p, true
		}
	}
	return Price{}, false
}
