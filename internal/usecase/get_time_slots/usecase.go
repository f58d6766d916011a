package get_time_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	draftRepo "github.com/m04kA/HSM-BookingGateway/internal/infra/storage/draft"
)

// UseCase use case получения сетки слотов для черновика
//
// Сетка фиксированная - пятнадцать получасовых слотов с 10:00 AM до 5:00 PM.
// Доступность зависит от выбранной даты: на будущую дату доступны все,
// на сегодня - только слоты со временем строго позже текущего,
// без даты выбирать нечего
type UseCase struct {
	draftRepo    DraftRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(draftRepo DraftRepository, logger Logger) *UseCase {
	return &UseCase{
		draftRepo:    draftRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.DraftID == uuid.Nil {
		uc.logger.Warn("GetTimeSlots: draftID is required")
		return nil, fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	draft, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("GetTimeSlots: draft id=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("GetTimeSlots: failed to get draft id=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	slots := domain.DailyTimeSlots()
	views := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		view := SlotView{Label: slot.Label}
		if draft.SelectedDate != nil {
			view.Selectable = slot.SelectableOn(*draft.SelectedDate, now)
		}
		if draft.SelectedSlot != nil && *draft.SelectedSlot == slot.Label {
			view.Selected = true
		}
		views = append(views, view)
	}

	return &Response{
		DraftID:      draft.ID,
		SelectedDate: draft.SelectedDate,
		Slots:        views,
	}, nil
}
