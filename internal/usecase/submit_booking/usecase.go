package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	draftRepo "github.com/m04kA/HSM-BookingGateway/internal/infra/storage/draft"
	apiClient "github.com/m04kA/HSM-BookingGateway/internal/integrations/bookingapi"
	"github.com/m04kA/HSM-BookingGateway/pkg/ptr"
)

// UseCase use case отправки подтвержденного черновика на бэкенд
//
// Отправка идет в три фазы:
//  1. в сериализуемой транзакции черновик атомарно переводится
//     confirming -> submitting, что гарантирует ровно один запрос в полете;
//  2. сетевой вызов бэкенда выполняется вне транзакции;
//  3. результат записывается как succeeded (с ID бронирования)
//     или failed (с дословным сообщением бэкенда)
type UseCase struct {
	draftRepo    DraftRepository
	apiClient    BookingAPIClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	apiClient BookingAPIClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:    draftRepo,
		apiClient:    apiClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отправки бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: draft=%s", req.DraftID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// Черновик, захваченный в транзакции; полезная нагрузка строится из него
	var draft *domain.BookingDraft

	// 3. Атомарно захватываем черновик под отправку (confirming -> submitting)
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		loaded, err := uc.draftRepo.GetByID(txCtx, req.DraftID)
		if err != nil {
			if errors.Is(err, draftRepo.ErrDraftNotFound) {
				uc.logger.Warn("SubmitBooking: draft id=%s not found", req.DraftID)
				return ErrDraftNotFound
			}
			uc.logger.Error("SubmitBooking: failed to get draft id=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
		}

		if loaded.Status == domain.StatusSubmitting {
			uc.logger.Warn("SubmitBooking: draft id=%s is already being submitted", req.DraftID)
			return ErrAlreadyInFlight
		}
		if !loaded.CanSubmit() {
			uc.logger.Warn("SubmitBooking: draft id=%s is not confirmed (status=%s)", req.DraftID, loaded.Status)
			return ErrNotConfirming
		}

		if err := validateDraft(loaded, now); err != nil {
			uc.logger.Warn("SubmitBooking: draft id=%s is no longer submittable: %v", req.DraftID, err)
			return err
		}

		swapped, err := uc.draftRepo.UpdateStatus(txCtx, loaded.ID, domain.StatusConfirming, domain.StatusSubmitting)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to mark draft id=%s as submitting: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
		if !swapped {
			uc.logger.Warn("SubmitBooking: draft id=%s was taken by a concurrent submission", req.DraftID)
			return ErrAlreadyInFlight
		}

		draft = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Строим полезную нагрузку и вызываем бэкенд вне транзакции
	payload := buildPayload(draft)
	created, callErr := uc.apiClient.CreateBooking(ctx, req.Credential.Token, payload)

	// 5. Записываем результат отправки
	return uc.recordOutcome(ctx, draft, created, callErr, now)
}

// recordOutcome переводит черновик из submitting в succeeded или failed
// и возвращает результат вызывающему
//
// Сообщение бэкенда из поля detail сохраняется и передается дословно.
// Ошибка записи результата логируется, но не скрывает исход отправки:
// заброшенный в submitting черновик подберет сборщик по TTL
func (uc *UseCase) recordOutcome(ctx context.Context, draft *domain.BookingDraft, created *apiClient.Booking, callErr error, now time.Time) (*Response, error) {
	resp := &Response{
		DraftID:     draft.ID,
		SubmittedAt: now,
	}

	// Успех: запоминаем ID бронирования, если бэкенд его вернул
	if callErr == nil {
		var bookingID *int64
		if created != nil && created.ID != 0 {
			bookingID = ptr.Ptr(created.ID)
		}

		if err := uc.draftRepo.SetOutcome(ctx, draft.ID, domain.StatusSucceeded, nil, bookingID); err != nil {
			uc.logger.Error("SubmitBooking: failed to record success for draft id=%s: %v", draft.ID, err)
			return nil, fmt.Errorf("%w: failed to record outcome: %v", ErrInternal, err)
		}

		uc.logger.Info("SubmitBooking: draft id=%s succeeded (booking=%v)", draft.ID, bookingID)
		resp.Status = string(domain.StatusSucceeded)
		resp.BookingID = bookingID
		return resp, nil
	}

	// Отвергнутые учетные данные - ошибка вызывающего, а не исход отправки:
	// черновик возвращается в confirming, пользователь может войти и повторить
	if errors.Is(callErr, apiClient.ErrUnauthorized) {
		if _, err := uc.draftRepo.UpdateStatus(ctx, draft.ID, domain.StatusSubmitting, domain.StatusConfirming); err != nil {
			uc.logger.Error("SubmitBooking: failed to release draft id=%s after auth failure: %v", draft.ID, err)
		}
		uc.logger.Warn("SubmitBooking: backend rejected credentials for draft id=%s", draft.ID)
		return nil, ErrUnauthorized
	}

	// Неудача: черновик остается со всеми данными, пользователь может
	// исправить и повторить. Сообщение бэкенда сохраняется дословно
	detail := classifyFailure(callErr)

	if err := uc.draftRepo.SetOutcome(ctx, draft.ID, domain.StatusFailed, detail, nil); err != nil {
		uc.logger.Error("SubmitBooking: failed to record failure for draft id=%s: %v", draft.ID, err)
	}

	uc.logger.Warn("SubmitBooking: draft id=%s failed: %v", draft.ID, callErr)
	resp.Status = string(domain.StatusFailed)
	resp.FailureDetail = detail
	return resp, nil
}

// classifyFailure превращает ошибку клиента бэкенда в сообщение для пользователя
func classifyFailure(callErr error) *string {
	var rejected *apiClient.BookingRejectedError
	switch {
	case errors.As(callErr, &rejected):
		if rejected.Detail != "" {
			return ptr.Ptr(rejected.Detail)
		}
		return ptr.Ptr("The booking was rejected. Please review your details and try again.")
	default:
		return ptr.Ptr("Could not reach the booking service. Please try again.")
	}
}

// buildPayload строит тело запроса бэкенда из черновика
// Формат даты YYYY-MM-DD, времени HH:MM:SS
func buildPayload(draft *domain.BookingDraft) *apiClient.CreateBookingRequest {
	slot, _ := draft.SelectedTimeSlot()

	return &apiClient.CreateBookingRequest{
		Service:     draft.ServiceID,
		Date:        draft.SelectedDate.Format(domain.DateFormat),
		Time:        slot.WireTime(),
		Name:        strings.TrimSpace(draft.Name),
		Contact:     strings.TrimSpace(draft.Contact),
		Description: strings.TrimSpace(draft.Description),
		Location:    strings.TrimSpace(draft.Address),
		Latitude:    draft.Latitude,
		Longitude:   draft.Longitude,
	}
}
