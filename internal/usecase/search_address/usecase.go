package search_address

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	draftRepo "github.com/m04kA/HSM-BookingGateway/internal/infra/storage/draft"
	geoClient "github.com/m04kA/HSM-BookingGateway/internal/integrations/geocoder"
)

// UseCase use case поиска адреса по произвольному тексту
//
// Прямое геокодирование: first match wins - берется первый результат
// геокодера. При отсутствии результатов позиция черновика не меняется,
// пользователь получает явную ошибку "Address not found"
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

// Execute выполняет use case поиска адреса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchAddress: draft=%s, query=%q", req.DraftID, req.Query)

	// 1. Валидация входных данных
	if req.DraftID == uuid.Nil {
		uc.logger.Warn("SearchAddress: draftID is required")
		return nil, fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		uc.logger.Warn("SearchAddress: empty query")
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}

	// 2. Получаем черновик
	draft, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("SearchAddress: draft id=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("SearchAddress: failed to get draft id=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	if !draft.IsEditable() {
		uc.logger.Warn("SearchAddress: draft id=%s is not editable (status=%s)", draft.ID, draft.Status)
		return nil, ErrDraftNotEditable
	}

	// 3. Прямое геокодирование
	place, err := uc.geocoder.Search(ctx, query)
	if err != nil {
		if errors.Is(err, geoClient.ErrNoResults) {
			uc.logger.Info("SearchAddress: no results for query=%q", query)
			return nil, ErrAddressNotFound
		}
		uc.logger.Error("SearchAddress: geocoder failed for query=%q: %v", query, err)
		return nil, fmt.Errorf("%w: %v", ErrGeocoderUnavailable, err)
	}

	lat, lon, err := place.Coordinates()
	if err != nil {
		uc.logger.Error("SearchAddress: geocoder returned unparseable coordinates: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGeocoderUnavailable, err)
	}

	// 4. Записываем найденный адрес и позицию
	draft.Address = domain.TruncateAddress(place.DisplayName)
	draft.Latitude = lat
	draft.Longitude = lon
	if draft.Status == domain.StatusFailed {
		draft.Status = domain.StatusEditing
		draft.FailureDetail = nil
	}

	updated, err := uc.draftRepo.Update(ctx, draft)
	if err != nil {
		uc.logger.Error("SearchAddress: failed to update draft id=%s: %v", draft.ID, err)
		return nil, fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
	}

	uc.logger.Info("SearchAddress: draft id=%s moved to %q (%v, %v)", draft.ID, updated.Address, lat, lon)

	return &Response{
		DraftID:         updated.ID,
		Address:         updated.Address,
		Latitude:        updated.Latitude,
		Longitude:       updated.Longitude,
		AddressRevision: updated.AddressRevision,
	}, nil
}
