package get_time_slots

import (
	"time"

	"github.com/google/uuid"
)

// Request запрос списка слотов для черновика
type Request struct {
	DraftID uuid.UUID
}

// SlotView слот в списке выбора времени
type SlotView struct {
	Label      string
	Selectable bool
	Selected   bool
}

// Response список слотов фиксированной сетки для выбранной даты черновика
// Если дата не выбрана, все слоты недоступны для выбора
type Response struct {
	DraftID      uuid.UUID
	SelectedDate *time.Time
	Slots        []SlotView
}
