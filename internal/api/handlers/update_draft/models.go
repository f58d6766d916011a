package update_draft

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	"github.com/m04kA/HSM-BookingGateway/internal/service/drafts/models"
)

// UpdateDraftRequest HTTP request model
// Отсутствующие поля не изменяются; пустая строка в selectedSlot снимает слот
type UpdateDraftRequest struct {
	SelectedDate *string  `json:"selectedDate,omitempty"` // "2025-10-15"
	SelectedSlot *string  `json:"selectedSlot,omitempty"` // "10:00 AM", "" снимает выбор
	Name         *string  `json:"name,omitempty"`
	Contact      *string  `json:"contact,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Address      *string  `json:"address,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты)
func (r *UpdateDraftRequest) ToServiceRequest(draftID uuid.UUID) (*models.UpdateDraftRequest, error) {
	req := &models.UpdateDraftRequest{
		DraftID:      draftID,
		SelectedSlot: r.SelectedSlot,
		Name:         r.Name,
		Contact:      r.Contact,
		Description:  r.Description,
		Address:      r.Address,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
	}

	if r.SelectedDate != nil {
		date, err := time.ParseInLocation(domain.DateFormat, *r.SelectedDate, time.Local)
		if err != nil {
			return nil, err
		}
		req.SelectedDate = &date
	}

	return req, nil
}
