package locate_draft

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	draftRepo "github.com/m04kA/HSM-BookingGateway/internal/infra/storage/draft"
)

// UseCase use case установки позиции черновика по координатам
//
// Координаты записываются сразу; текст адреса подтягивается обратным
// геокодированием best-effort. Ошибка геокодера не является ошибкой
// операции - позиция уже установлена, пользователь может ввести адрес
// руками. Устаревший ответ геокодера (черновик успели поменять)
// отбрасывается по ревизии адреса
type UseCase struct {
	draftRepo DraftRepository
	geocoder  GeocoderClient
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(draftRepo DraftRepository, geocoder GeocoderClient, logger Logger) *UseCase {
	return &UseCase{
		draftRepo: draftRepo,
		geocoder:  geocoder,
		logger:    logger,
	}
}

// Execute выполняет use case установки позиции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("LocateDraft: draft=%s, lat=%v, lon=%v", req.DraftID, req.Latitude, req.Longitude)

	// 1. Валидация входных данных
	if req.DraftID == uuid.Nil {
		uc.logger.Warn("LocateDraft: draftID is required")
		return nil, fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}
	if err := domain.ValidateCoordinates(req.Latitude, req.Longitude); err != nil {
		uc.logger.Warn("LocateDraft: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidCoordinates, err)
	}

	// 2. Получаем черновик
	draft, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("LocateDraft: draft id=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("LocateDraft: failed to get draft id=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	if !draft.IsEditable() {
		uc.logger.Warn("LocateDraft: draft id=%s is not editable (status=%s)", draft.ID, draft.Status)
		return nil, ErrDraftNotEditable
	}

	// 3. Записываем координаты; текст адреса не трогаем
	draft.Latitude = req.Latitude
	draft.Longitude = req.Longitude
	if draft.Status == domain.StatusFailed {
		draft.Status = domain.StatusEditing
		draft.FailureDetail = nil
	}

	updated, err := uc.draftRepo.Update(ctx, draft)
	if err != nil {
		uc.logger.Error("LocateDraft: failed to update draft id=%s: %v", draft.ID, err)
		return nil, fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
	}

	resp := &Response{
		DraftID:         updated.ID,
		Latitude:        updated.Latitude,
		Longitude:       updated.Longitude,
		Address:         updated.Address,
		AddressRevision: updated.AddressRevision,
	}

	// 4. Обратное геокодирование best-effort; молчаливый отказ
	place, err := uc.geocoder.Reverse(ctx, req.Latitude, req.Longitude)
	if err != nil {
		uc.logger.Info("LocateDraft: reverse geocoding failed for draft id=%s: %v", draft.ID, err)
		return resp, nil
	}

	// 5. Записываем адрес, только если черновик не успели поменять
	address := domain.TruncateAddress(place.DisplayName)
	applied, err := uc.draftRepo.UpdateAddressIfRevision(ctx, updated.ID, address, updated.AddressRevision)
	if err != nil {
		uc.logger.Error("LocateDraft: failed to store resolved address for draft id=%s: %v", draft.ID, err)
		return resp, nil
	}
	if !applied {
		uc.logger.Info("LocateDraft: resolved address for draft id=%s is stale, discarded", draft.ID)
		return resp, nil
	}

	uc.logger.Info("LocateDraft: draft id=%s resolved to %q", draft.ID, address)
	resp.Address = address
	resp.AddressResolved = true
	resp.AddressRevision++
	return resp, nil
}
