package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
)

// Request модели

// OpenDraftRequest запрос на открытие диалога бронирования
type OpenDraftRequest struct {
	ServiceID int64
}

// UpdateDraftRequest запрос на изменение полей черновика
// nil-поля не изменяются; пустая строка в SelectedSlot снимает выбор слота
type UpdateDraftRequest struct {
	DraftID      uuid.UUID
	SelectedDate *time.Time
	SelectedSlot *string
	Name         *string
	Contact      *string
	Description  *string
	Address      *string
	Latitude     *float64 // только вместе с Longitude (клик по карте)
	Longitude    *float64
}

// Response модели

// DraftResponse ответ с текущим состоянием черновика
type DraftResponse struct {
	ID              uuid.UUID `json:"id"`
	ServiceID       int64     `json:"serviceId"`
	ServiceName     string    `json:"serviceName,omitempty"`
	ServicePrice    *float64  `json:"servicePrice,omitempty"`
	SelectedDate    *string   `json:"selectedDate,omitempty"` // "2025-10-15"
	SelectedSlot    *string   `json:"selectedSlot,omitempty"` // "10:00 AM"
	Name            string    `json:"name"`
	Contact         string    `json:"contact"`
	Description     string    `json:"description"`
	Address         string    `json:"address"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	AddressRevision int64     `json:"addressRevision"`
	Status          string    `json:"status"`
	FailureDetail   *string   `json:"failureDetail,omitempty"`
	BookingID       *int64    `json:"bookingId,omitempty"`
	CreatedAt       string    `json:"createdAt"`
	UpdatedAt       string    `json:"updatedAt"`
}

// AcknowledgeResponse результат подтверждения успешной отправки
// RefreshBookings сигнализирует странице-владельцу обновить список бронирований
type AcknowledgeResponse struct {
	BookingID       *int64 `json:"bookingId,omitempty"`
	RefreshBookings bool   `json:"refreshBookings"`
}

// FromDomainDraft конвертирует доменный черновик в модель ответа
func FromDomainDraft(draft *domain.BookingDraft) *DraftResponse {
	resp := &DraftResponse{
		ID:              draft.ID,
		ServiceID:       draft.ServiceID,
		ServiceName:     draft.ServiceName,
		ServicePrice:    draft.ServicePrice,
		SelectedSlot:    draft.SelectedSlot,
		Name:            draft.Name,
		Contact:         draft.Contact,
		Description:     draft.Description,
		Address:         draft.Address,
		Latitude:        draft.Latitude,
		Longitude:       draft.Longitude,
		AddressRevision: draft.AddressRevision,
		Status:          string(draft.Status),
		FailureDetail:   draft.FailureDetail,
		BookingID:       draft.BookingID,
		CreatedAt:       draft.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       draft.UpdatedAt.Format(time.RFC3339),
	}

	if draft.SelectedDate != nil {
		date := draft.SelectedDate.Format(domain.DateFormat)
		resp.SelectedDate = &date
	}

	return resp
}
