package get_calendar

import (
	"time"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
)

// MonthRef ссылка на соседний месяц для навигации по календарю
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// DayCell ячейка календарной сетки
// Пустые ячейки перед 1-м числом идут с date=null
type DayCell struct {
	Date       *string `json:"date"`  // "2025-10-15", null для пустой ячейки
	Day        int     `json:"day"`   // 0 для пустой ячейки
	Today      bool    `json:"today"`
	Selectable bool    `json:"selectable"` // false для прошедших дат
}

// CalendarResponse календарная сетка месяца
// Неделя начинается с воскресенья
type CalendarResponse struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	MonthName string    `json:"monthName"`
	Cells     []DayCell `json:"cells"`
	Prev      MonthRef  `json:"prev"`
	Next      MonthRef  `json:"next"`
}

// FromMonthGrid конвертирует доменную сетку в HTTP response
func FromMonthGrid(grid domain.MonthGrid, now time.Time) *CalendarResponse {
	cells := make([]DayCell, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		if cell == nil {
			cells = append(cells, DayCell{})
			continue
		}
		date := cell.Format(domain.DateFormat)
		cells = append(cells, DayCell{
			Date:       &date,
			Day:        cell.Day(),
			Today:      domain.IsSameDay(*cell, now),
			Selectable: !domain.IsPastDate(*cell, now),
		})
	}

	prevYear, prevMonth := domain.PrevMonth(grid.Year, grid.Month)
	nextYear, nextMonth := domain.NextMonth(grid.Year, grid.Month)

	return &CalendarResponse{
		Year:      grid.Year,
		Month:     int(grid.Month),
		MonthName: grid.Month.String(),
		Cells:     cells,
		Prev:      MonthRef{Year: prevYear, Month: int(prevMonth)},
		Next:      MonthRef{Year: nextYear, Month: int(nextMonth)},
	}
}
