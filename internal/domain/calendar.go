package domain

import "time"

// MonthGrid календарная сетка месяца с выравниванием по неделям
// Cells содержит ведущие nil-ячейки для дней до 1-го числа
// (неделя начинается с воскресенья), затем по одной ячейке на каждый день месяца
type MonthGrid struct {
	Year  int
	Month time.Month
	Cells []*time.Time
}

// NewMonthGrid строит сетку для указанного месяца
// Переполнение месяца нормализуется с переносом года:
// (2025, 13) эквивалентно (2026, January), (2025, 0) - (2024, December)
func NewMonthGrid(year int, month time.Month) MonthGrid {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	year, month = firstDay.Year(), firstDay.Month()

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
	leadingBlanks := int(firstDay.Weekday()) // Sunday == 0

	cells := make([]*time.Time, 0, leadingBlanks+daysInMonth)
	for i := 0; i < leadingBlanks; i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		cells = append(cells, &date)
	}

	return MonthGrid{Year: year, Month: month, Cells: cells}
}

// LeadingBlanks возвращает число пустых ячеек перед 1-м числом
func (g MonthGrid) LeadingBlanks() int {
	count := 0
	for _, cell := range g.Cells {
		if cell != nil {
			break
		}
		count++
	}
	return count
}

// DaysInMonth возвращает число дней в месяце сетки
func (g MonthGrid) DaysInMonth() int {
	return len(g.Cells) - g.LeadingBlanks()
}

// NextMonth возвращает следующий месяц с переносом года
func NextMonth(year int, month time.Month) (int, time.Month) {
	next := time.Date(year, month+1, 1, 0, 0, 0, 0, time.Local)
	return next.Year(), next.Month()
}

// PrevMonth возвращает предыдущий месяц с переносом года
func PrevMonth(year int, month time.Month) (int, time.Month) {
	prev := time.Date(year, month-1, 1, 0, 0, 0, 0, time.Local)
	return prev.Year(), prev.Month()
}

// DateOnly обнуляет время, оставляя только дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsPastDate проверяет, что дата строго раньше сегодняшнего дня
func IsPastDate(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}
