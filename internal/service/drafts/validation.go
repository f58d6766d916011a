package drafts

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	"github.com/m04kA/HSM-BookingGateway/internal/service/drafts/models"
)

// applyDateAndSlot применяет выбор даты и слота с проверкой инвариантов
// Порядок важен: сначала дата, затем слот - так слот всегда проверяется
// против актуальной даты
func (s *Service) applyDateAndSlot(draft *domain.BookingDraft, req *models.UpdateDraftRequest, now time.Time) error {
	if req.SelectedDate != nil {
		date := domain.DateOnly(*req.SelectedDate)
		if domain.IsPastDate(date, now) {
			return ErrDateInPast
		}
		draft.SelectedDate = &date

		// Смена даты снимает слот, ставший недоступным на новую дату
		if req.SelectedSlot == nil && draft.SelectedSlot != nil {
			slot, ok := domain.SlotByLabel(*draft.SelectedSlot)
			if !ok || !slot.SelectableOn(date, now) {
				s.logger.Info("UpdateDraft: draft id=%s: slot %q cleared after date change", draft.ID, *draft.SelectedSlot)
				draft.SelectedSlot = nil
			}
		}
	}

	if req.SelectedSlot != nil {
		label := *req.SelectedSlot
		if label == "" {
			draft.SelectedSlot = nil
			return nil
		}

		if draft.SelectedDate == nil {
			return ErrSlotRequiresDate
		}

		slot, ok := domain.SlotByLabel(label)
		if !ok {
			return fmt.Errorf("%w: %q", ErrSlotUnknown, label)
		}
		if !slot.SelectableOn(*draft.SelectedDate, now) {
			return fmt.Errorf("%w: %q", ErrSlotNotSelectable, label)
		}

		draft.SelectedSlot = &label
	}

	return nil
}

// applyContactFields применяет текстовые поля с проверкой длины
func applyContactFields(draft *domain.BookingDraft, req *models.UpdateDraftRequest) error {
	if req.Name != nil {
		if len(*req.Name) > domain.MaxNameLength {
			return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
		}
		draft.Name = *req.Name
	}

	if req.Contact != nil {
		if len(*req.Contact) > domain.MaxContactLength {
			return fmt.Errorf("%w: contact exceeds %d characters", ErrInvalidInput, domain.MaxContactLength)
		}
		draft.Contact = *req.Contact
	}

	if req.Description != nil {
		draft.Description = *req.Description
	}

	if req.Address != nil {
		if len(*req.Address) > domain.MaxAddressLength {
			return fmt.Errorf("%w: address exceeds %d characters", ErrInvalidInput, domain.MaxAddressLength)
		}
		draft.Address = *req.Address
	}

	return nil
}

// applyPosition применяет координаты, выбранные кликом по карте
// Координаты задаются только парой; текст адреса при этом не меняется
func applyPosition(draft *domain.BookingDraft, req *models.UpdateDraftRequest) error {
	if req.Latitude == nil && req.Longitude == nil {
		return nil
	}
	if req.Latitude == nil || req.Longitude == nil {
		return fmt.Errorf("%w: latitude and longitude must be set together", ErrInvalidCoordinates)
	}

	if err := domain.ValidateCoordinates(*req.Latitude, *req.Longitude); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinates, err)
	}

	draft.Latitude = *req.Latitude
	draft.Longitude = *req.Longitude

	return nil
}

// validateForSubmission проверяет полноту черновика перед шагом подтверждения
// Ровно эти же данные уйдут на бэкенд при отправке
func validateForSubmission(draft *domain.BookingDraft, now time.Time) error {
	if draft.SelectedDate == nil {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if domain.IsPastDate(*draft.SelectedDate, now) {
		return fmt.Errorf("%w: selected date is in the past", ErrValidation)
	}

	if draft.SelectedSlot == nil {
		return fmt.Errorf("%w: time slot is required", ErrValidation)
	}
	slot, ok := domain.SlotByLabel(*draft.SelectedSlot)
	if !ok {
		return fmt.Errorf("%w: unknown time slot %q", ErrValidation, *draft.SelectedSlot)
	}
	if !slot.SelectableOn(*draft.SelectedDate, now) {
		return fmt.Errorf("%w: time slot %q is no longer available", ErrValidation, *draft.SelectedSlot)
	}

	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(draft.Contact) == "" {
		return fmt.Errorf("%w: contact is required", ErrValidation)
	}
	if strings.TrimSpace(draft.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrValidation)
	}

	return nil
}
