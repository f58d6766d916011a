package submit_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
)

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req.DraftID == uuid.Nil {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}
	if req.Credential.IsZero() {
		return ErrAuthRequired
	}
	return nil
}

// validateDraft проверяет, что подтвержденный черновик все еще отправляем
// Между подтверждением и отправкой могло пройти время - слот мог уйти в прошлое
func validateDraft(draft *domain.BookingDraft, now time.Time) error {
	if draft.SelectedDate == nil {
		return fmt.Errorf("%w: date is missing", ErrValidation)
	}
	if domain.IsPastDate(*draft.SelectedDate, now) {
		return fmt.Errorf("%w: selected date is in the past", ErrValidation)
	}

	slot, ok := draft.SelectedTimeSlot()
	if !ok {
		return fmt.Errorf("%w: time slot is missing", ErrValidation)
	}
	if !slot.SelectableOn(*draft.SelectedDate, now) {
		return fmt.Errorf("%w: time slot %q is no longer available", ErrValidation, slot.Label)
	}

	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: name is missing", ErrValidation)
	}
	if strings.TrimSpace(draft.Contact) == "" {
		return fmt.Errorf("%w: contact is missing", ErrValidation)
	}
	if strings.TrimSpace(draft.Address) == "" {
		return fmt.Errorf("%w: address is missing", ErrValidation)
	}

	return nil
}
