package drafts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	draftRepo "github.com/m04kA/HSM-BookingGateway/internal/infra/storage/draft"
	apiClient "github.com/m04kA/HSM-BookingGateway/internal/integrations/bookingapi"
	"github.com/m04kA/HSM-BookingGateway/internal/service/drafts/models"
)

// Service сервис жизненного цикла черновиков бронирования
// Реализует машину состояний диалога:
// editing -> confirming -> submitting -> {succeeded | failed}
// (сама отправка выполняется usecase submit_booking)
type Service struct {
	draftRepo    DraftRepository
	apiClient    BookingAPIClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(
	draftRepo DraftRepository,
	apiClient BookingAPIClient,
	logger Logger,
) *Service {
	return &Service{
		draftRepo:    draftRepo,
		apiClient:    apiClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Open создает свежий черновик для услуги - диалог бронирования открыт
// Данные услуги подтягиваются с бэкенда и денормализуются в черновик,
// чтобы шаг подтверждения не требовал повторного запроса.
// Недоступность бэкенда не мешает открыть диалог - черновик создается
// без денормализованных данных (graceful degradation)
func (s *Service) Open(ctx context.Context, req *models.OpenDraftRequest) (*models.DraftResponse, error) {
	s.logger.Info("OpenDraft: service=%d", req.ServiceID)

	if req.ServiceID <= 0 {
		s.logger.Warn("OpenDraft: invalid service id=%d", req.ServiceID)
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	draft := &domain.BookingDraft{
		ID:        uuid.New(),
		ServiceID: req.ServiceID,
		Latitude:  domain.FallbackLatitude,
		Longitude: domain.FallbackLongitude,
		Status:    domain.StatusEditing,
	}

	service, err := s.apiClient.GetService(ctx, req.ServiceID)
	switch {
	case err == nil:
		draft.ServiceName = service.Name
		draft.ServicePrice = service.Price.Value
	case errors.Is(err, apiClient.ErrServiceNotFound):
		s.logger.Warn("OpenDraft: service id=%d not found", req.ServiceID)
		return nil, ErrServiceNotFound
	default:
		s.logger.Error("OpenDraft: failed to fetch service id=%d, opening draft without summary: %v", req.ServiceID, err)
	}

	created, err := s.draftRepo.Create(ctx, draft)
	if err != nil {
		s.logger.Error("OpenDraft: failed to create draft: %v", err)
		return nil, fmt.Errorf("%w: failed to create draft: %v", ErrInternal, err)
	}

	s.logger.Info("OpenDraft: created draft id=%s for service=%d", created.ID, req.ServiceID)
	return models.FromDomainDraft(created), nil
}

// Get получает текущее состояние черновика
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.DraftResponse, error) {
	draft, err := s.getDraft(ctx, "GetDraft", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainDraft(draft), nil
}

// Update изменяет поля черновика с проверкой инвариантов выбора даты и слота:
//   - дата раньше сегодняшнего дня не выбирается;
//   - слот выбирается только при выбранной дате и только если его время
//     еще не прошло;
//   - смена даты снимает выбор слота, ставшего недоступным;
//   - клик по карте задает координаты, не трогая текст адреса.
//
// Любое изменение после неудачной отправки возвращает черновик в editing
func (s *Service) Update(ctx context.Context, req *models.UpdateDraftRequest) (*models.DraftResponse, error) {
	draft, err := s.getDraft(ctx, "UpdateDraft", req.DraftID)
	if err != nil {
		return nil, err
	}

	if !draft.IsEditable() {
		s.logger.Warn("UpdateDraft: draft id=%s is not editable (status=%s)", draft.ID, draft.Status)
		return nil, ErrDraftNotEditable
	}

	now := s.timeProvider.Now()

	if err := s.applyDateAndSlot(draft, req, now); err != nil {
		s.logger.Warn("UpdateDraft: draft id=%s: %v", draft.ID, err)
		return nil, err
	}

	if err := applyContactFields(draft, req); err != nil {
		s.logger.Warn("UpdateDraft: draft id=%s: %v", draft.ID, err)
		return nil, err
	}

	if err := applyPosition(draft, req); err != nil {
		s.logger.Warn("UpdateDraft: draft id=%s: %v", draft.ID, err)
		return nil, err
	}

	// Правка после неудачной отправки возвращает черновик в редактирование
	if draft.Status == domain.StatusFailed {
		draft.Status = domain.StatusEditing
		draft.FailureDetail = nil
	}

	updated, err := s.draftRepo.Update(ctx, draft)
	if err != nil {
		s.logger.Error("UpdateDraft: failed to update draft id=%s: %v", draft.ID, err)
		return nil, fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateDraft: updated draft id=%s (revision=%d)", updated.ID, updated.AddressRevision)
	return models.FromDomainDraft(updated), nil
}

// Confirm проверяет собранный черновик и переводит его на шаг подтверждения
// Все обязательные поля должны быть заполнены; до этого момента никакой
// сетевой вызов бэкенда не выполняется
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*models.DraftResponse, error) {
	draft, err := s.getDraft(ctx, "ConfirmDraft", id)
	if err != nil {
		return nil, err
	}

	if !draft.CanConfirm() {
		s.logger.Warn("ConfirmDraft: draft id=%s is not editable (status=%s)", draft.ID, draft.Status)
		return nil, ErrDraftNotEditable
	}

	now := s.timeProvider.Now()
	if err := validateForSubmission(draft, now); err != nil {
		s.logger.Warn("ConfirmDraft: draft id=%s validation failed: %v", draft.ID, err)
		return nil, err
	}

	draft.Status = domain.StatusConfirming
	draft.FailureDetail = nil

	updated, err := s.draftRepo.Update(ctx, draft)
	if err != nil {
		s.logger.Error("ConfirmDraft: failed to update draft id=%s: %v", draft.ID, err)
		return nil, fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
	}

	s.logger.Info("ConfirmDraft: draft id=%s is awaiting user confirmation", draft.ID)
	return models.FromDomainDraft(updated), nil
}

// Reopen отменяет шаг подтверждения и возвращает черновик в редактирование
// Введенные данные сохраняются
func (s *Service) Reopen(ctx context.Context, id uuid.UUID) (*models.DraftResponse, error) {
	draft, err := s.getDraft(ctx, "ReopenDraft", id)
	if err != nil {
		return nil, err
	}

	if !draft.CanReopen() {
		s.logger.Warn("ReopenDraft: draft id=%s is not awaiting confirmation (status=%s)", draft.ID, draft.Status)
		return nil, ErrNotConfirming
	}

	draft.Status = domain.StatusEditing

	updated, err := s.draftRepo.Update(ctx, draft)
	if err != nil {
		s.logger.Error("ReopenDraft: failed to update draft id=%s: %v", draft.ID, err)
		return nil, fmt.Errorf("%w: failed to update draft: %v", ErrInternal, err)
	}

	s.logger.Info("ReopenDraft: draft id=%s returned to editing", draft.ID)
	return models.FromDomainDraft(updated), nil
}

// Acknowledge закрывает диалог после успешной отправки
// Черновик удаляется; вызывающая страница получает сигнал обновить
// список бронирований
func (s *Service) Acknowledge(ctx context.Context, id uuid.UUID) (*models.AcknowledgeResponse, error) {
	draft, err := s.getDraft(ctx, "AcknowledgeDraft", id)
	if err != nil {
		return nil, err
	}

	if !draft.CanAcknowledge() {
		s.logger.Warn("AcknowledgeDraft: draft id=%s has no success to acknowledge (status=%s)", draft.ID, draft.Status)
		return nil, ErrNotSucceeded
	}

	if err := s.draftRepo.Delete(ctx, draft.ID); err != nil {
		s.logger.Error("AcknowledgeDraft: failed to delete draft id=%s: %v", draft.ID, err)
		return nil, fmt.Errorf("%w: failed to delete draft: %v", ErrInternal, err)
	}

	s.logger.Info("AcknowledgeDraft: draft id=%s acknowledged and closed (booking=%v)", draft.ID, draft.BookingID)
	return &models.AcknowledgeResponse{
		BookingID:       draft.BookingID,
		RefreshBookings: true,
	}, nil
}

// Discard закрывает диалог без отправки и удаляет черновик
func (s *Service) Discard(ctx context.Context, id uuid.UUID) error {
	err := s.draftRepo.Delete(ctx, id)
	if errors.Is(err, draftRepo.ErrDraftNotFound) {
		return ErrDraftNotFound
	}
	if err != nil {
		s.logger.Error("DiscardDraft: failed to delete draft id=%s: %v", id, err)
		return fmt.Errorf("%w: failed to delete draft: %v", ErrInternal, err)
	}

	s.logger.Info("DiscardDraft: draft id=%s discarded", id)
	return nil
}

// getDraft загружает черновик с единообразной обработкой ошибок
func (s *Service) getDraft(ctx context.Context, op string, id uuid.UUID) (*domain.BookingDraft, error) {
	draft, err := s.draftRepo.GetByID(ctx, id)
	if errors.Is(err, draftRepo.ErrDraftNotFound) {
		s.logger.Warn("%s: draft id=%s not found", op, id)
		return nil, ErrDraftNotFound
	}
	if err != nil {
		s.logger.Error("%s: repository error for draft id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return draft, nil
}
