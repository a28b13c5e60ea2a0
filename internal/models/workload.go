// Package models содержит доменные структуры сервиса учёта нагрузки тренеров:
// агрегат TrainerWorkload с вложенными итогами по годам и месяцам,
// событие тренировки и структуры ответа со сводкой.
package models

// TrainerWorkload — агрегат нагрузки одного тренера.
// Годы уникальны по Year, месяцы внутри года уникальны по Month,
// у каждого сохранённого месяца TotalHours > 0.
type TrainerWorkload struct {
	Username  string         // Уникальный ключ тренера
	FirstName string         // Имя из последнего события ADD
	LastName  string         // Фамилия из последнего события ADD
	Status    TrainerStatus  // Статус из последнего события ADD
	Years     []*YearSummary // Итоги по годам в порядке добавления
}

// YearSummary — итоги тренера за календарный год.
type YearSummary struct {
	Year   int
	Months []*MonthSummary
}

// MonthSummary — суммарное количество часов за месяц.
type MonthSummary struct {
	Month      Month
	TotalHours float64
}

// NewTrainerWorkload создает пустой агрегат для тренера.
func NewTrainerWorkload(username string) *TrainerWorkload {
	return &TrainerWorkload{
		Username: username,
		Years:    []*YearSummary{},
	}
}

// FindYear возвращает итоги за год или nil.
func (w *TrainerWorkload) FindYear(year int) *YearSummary {
	for _, y := range w.Years {
		if y.Year == year {
			return y
		}
	}
	return nil
}

// RemoveYear удаляет год из агрегата.
func (w *TrainerWorkload) RemoveYear(year int) {
	for i, y := range w.Years {
		if y.Year == year {
			w.Years = append(w.Years[:i], w.Years[i+1:]...)
			return
		}
	}
}

// FindMonth возвращает итоги за месяц или nil.
func (y *YearSummary) FindMonth(month Month) *MonthSummary {
	for _, m := range y.Months {
		if m.Month == month {
			return m
		}
	}
	return nil
}

// RemoveMonth удаляет месяц из года.
func (y *YearSummary) RemoveMonth(month Month) {
	for i, m := range y.Months {
		if m.Month == month {
			y.Months = append(y.Months[:i], y.Months[i+1:]...)
			return
		}
	}
}

// Clone возвращает глубокую копию агрегата.
func (w *TrainerWorkload) Clone() *TrainerWorkload {
	if w == nil {
		return nil
	}
	c := *w
	c.Years = make([]*YearSummary, 0, len(w.Years))
	for _, y := range w.Years {
		yc := &YearSummary{Year: y.Year, Months: make([]*MonthSummary, 0, len(y.Months))}
		for _, m := range y.Months {
			mc := *m
			yc.Months = append(yc.Months, &mc)
		}
		c.Years = append(c.Years, yc)
	}
	return &c
}
