package get_time_slots

import (
	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	getTimeSlots "github.com/m04kA/HSM-BookingGateway/internal/usecase/get_time_slots"
)

// SlotResponse слот в сетке выбора времени
type SlotResponse struct {
	Label      string `json:"label"` // "10:00 AM"
	Selectable bool   `json:"selectable"`
	Selected   bool   `json:"selected"`
}

// TimeSlotsResponse HTTP response со списком слотов
type TimeSlotsResponse struct {
	SelectedDate *string        `json:"selectedDate,omitempty"` // "2025-10-15"
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	out := &TimeSlotsResponse{
		Slots: make([]SlotResponse, 0, len(resp.Slots)),
	}

	if resp.SelectedDate != nil {
		date := resp.SelectedDate.Format(domain.DateFormat)
		out.SelectedDate = &date
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Label:      slot.Label,
			Selectable: slot.Selectable,
			Selected:   slot.Selected,
		})
	}

	return out
}
