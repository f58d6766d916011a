package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	draftRepo "github.com/m04kA/HSM-BookingGateway/internal/infra/storage/draft"
	"github.com/m04kA/HSM-BookingGateway/internal/integrations/bookingapi"
	"github.com/m04kA/HSM-BookingGateway/pkg/ptr"
)

// fakeRepo репозиторий в памяти для тестов
type fakeRepo struct {
	draft *domain.BookingDraft

	updateStatusCalls []statusTransition
	outcome           *recordedOutcome
	updateStatusErr   error
	setOutcomeErr     error
}

type statusTransition struct {
	from, to domain.DraftStatus
}

type recordedOutcome struct {
	status        domain.DraftStatus
	failureDetail *string
	bookingID     *int64
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.BookingDraft, error) {
	if r.draft == nil || r.draft.ID != id {
		return nil, draftRepo.ErrDraftNotFound
	}
	copied := *r.draft
	return &copied, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, _ uuid.UUID, from, to domain.DraftStatus) (bool, error) {
	if r.updateStatusErr != nil {
		return false, r.updateStatusErr
	}
	r.updateStatusCalls = append(r.updateStatusCalls, statusTransition{from, to})
	if r.draft.Status != from {
		return false, nil
	}
	r.draft.Status = to
	return true, nil
}

func (r *fakeRepo) SetOutcome(_ context.Context, _ uuid.UUID, status domain.DraftStatus, failureDetail *string, bookingID *int64) error {
	if r.setOutcomeErr != nil {
		return r.setOutcomeErr
	}
	r.outcome = &recordedOutcome{status: status, failureDetail: failureDetail, bookingID: bookingID}
	r.draft.Status = status
	return nil
}

// fakeClient клиент бэкенда для тестов
type fakeClient struct {
	booking *bookingapi.Booking
	err     error

	calls   int
	token   string
	payload *bookingapi.CreateBookingRequest
}

func (c *fakeClient) CreateBooking(_ context.Context, token string, booking *bookingapi.CreateBookingRequest) (*bookingapi.Booking, error) {
	c.calls++
	c.token = token
	c.payload = booking
	if c.err != nil {
		return nil, c.err
	}
	return c.booking, nil
}

// fakeTxManager прозрачно выполняет функцию без транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeTime фиксированное время для тестов
type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time { return f.now }

// noopLogger логгер-заглушка
type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, time.October, 15, 14, 35, 0, 0, time.Local)

func confirmedDraft() *domain.BookingDraft {
	tomorrow := time.Date(2025, time.October, 16, 0, 0, 0, 0, time.Local)
	return &domain.BookingDraft{
		ID:           uuid.New(),
		ServiceID:    7,
		SelectedDate: &tomorrow,
		SelectedSlot: ptr.Ptr("10:00 AM"),
		Name:         "  Jordan  ",
		Contact:      "+1 555 0100",
		Description:  "Two-bedroom apartment",
		Address:      "Main Street 5",
		Latitude:     31.5204,
		Longitude:    74.3587,
		Status:       domain.StatusConfirming,
	}
}

func newTestUseCase(repo *fakeRepo, client *fakeClient) *UseCase {
	uc := NewUseCase(repo, client, fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fakeTime{now: testNow}
	return uc
}

func validRequest(draftID uuid.UUID) *Request {
	return &Request{
		DraftID:    draftID,
		Credential: domain.Credential{Token: "user-token"},
	}
}

func TestExecuteRequestValidation(t *testing.T) {
	t.Run("missing credential stops before any call", func(t *testing.T) {
		repo := &fakeRepo{draft: confirmedDraft()}
		client := &fakeClient{}
		uc := newTestUseCase(repo, client)

		_, err := uc.Execute(context.Background(), &Request{DraftID: repo.draft.ID})
		assert.ErrorIs(t, err, ErrAuthRequired)
		assert.Zero(t, client.calls)
		assert.Empty(t, repo.updateStatusCalls)
	})

	t.Run("missing draft id", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, &fakeClient{})
		_, err := uc.Execute(context.Background(), &Request{Credential: domain.Credential{Token: "t"}})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecuteDraftChecks(t *testing.T) {
	t.Run("draft not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, &fakeClient{})
		_, err := uc.Execute(context.Background(), validRequest(uuid.New()))
		assert.ErrorIs(t, err, ErrDraftNotFound)
	})

	t.Run("editing draft is not submittable", func(t *testing.T) {
		draft := confirmedDraft()
		draft.Status = domain.StatusEditing
		repo := &fakeRepo{draft: draft}
		client := &fakeClient{}
		uc := newTestUseCase(repo, client)

		_, err := uc.Execute(context.Background(), validRequest(draft.ID))
		assert.ErrorIs(t, err, ErrNotConfirming)
		assert.Zero(t, client.calls)
	})

	t.Run("submitting draft means a request is already in flight", func(t *testing.T) {
		draft := confirmedDraft()
		draft.Status = domain.StatusSubmitting
		repo := &fakeRepo{draft: draft}
		client := &fakeClient{}
		uc := newTestUseCase(repo, client)

		_, err := uc.Execute(context.Background(), validRequest(draft.ID))
		assert.ErrorIs(t, err, ErrAlreadyInFlight)
		assert.Zero(t, client.calls)
	})

	t.Run("slot that elapsed after confirmation blocks submission", func(t *testing.T) {
		draft := confirmedDraft()
		today := time.Date(2025, time.October, 15, 0, 0, 0, 0, time.Local)
		draft.SelectedDate = &today
		draft.SelectedSlot = ptr.Ptr("2:00 PM") // testNow = 14:35
		repo := &fakeRepo{draft: draft}
		client := &fakeClient{}
		uc := newTestUseCase(repo, client)

		_, err := uc.Execute(context.Background(), validRequest(draft.ID))
		assert.ErrorIs(t, err, ErrValidation)
		assert.Zero(t, client.calls)
	})
}

func TestExecuteSuccess(t *testing.T) {
	draft := confirmedDraft()
	repo := &fakeRepo{draft: draft}
	client := &fakeClient{booking: &bookingapi.Booking{ID: 42}}
	uc := newTestUseCase(repo, client)

	resp, err := uc.Execute(context.Background(), validRequest(draft.ID))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusSucceeded), resp.Status)
	require.NotNil(t, resp.BookingID)
	assert.Equal(t, int64(42), *resp.BookingID)
	assert.Nil(t, resp.FailureDetail)
	assert.Equal(t, testNow, resp.SubmittedAt)

	// Черновик был атомарно захвачен под отправку
	require.Len(t, repo.updateStatusCalls, 1)
	assert.Equal(t, statusTransition{domain.StatusConfirming, domain.StatusSubmitting}, repo.updateStatusCalls[0])

	// Полезная нагрузка: дата YYYY-MM-DD, время HH:MM:SS, строки без пробелов
	require.Equal(t, 1, client.calls)
	assert.Equal(t, "user-token", client.token)
	assert.Equal(t, int64(7), client.payload.Service)
	assert.Equal(t, "2025-10-16", client.payload.Date)
	assert.Equal(t, "10:00:00", client.payload.Time)
	assert.Equal(t, "Jordan", client.payload.Name)
	assert.Equal(t, "Main Street 5", client.payload.Location)
	assert.Equal(t, 31.5204, client.payload.Latitude)

	require.NotNil(t, repo.outcome)
	assert.Equal(t, domain.StatusSucceeded, repo.outcome.status)
	require.NotNil(t, repo.outcome.bookingID)
	assert.Equal(t, int64(42), *repo.outcome.bookingID)
	assert.Nil(t, repo.outcome.failureDetail)
}

func TestExecuteSuccessWithoutBookingID(t *testing.T) {
	// Бэкенд подтвердил бронирование, но не вернул тело
	draft := confirmedDraft()
	repo := &fakeRepo{draft: draft}
	client := &fakeClient{booking: &bookingapi.Booking{}}
	uc := newTestUseCase(repo, client)

	resp, err := uc.Execute(context.Background(), validRequest(draft.ID))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusSucceeded), resp.Status)
	assert.Nil(t, resp.BookingID)
	require.NotNil(t, repo.outcome)
	assert.Nil(t, repo.outcome.bookingID)
}

func TestExecuteRejection(t *testing.T) {
	t.Run("backend detail is passed through verbatim", func(t *testing.T) {
		draft := confirmedDraft()
		repo := &fakeRepo{draft: draft}
		client := &fakeClient{err: &bookingapi.BookingRejectedError{
			StatusCode: 422,
			Detail:     "No providers available in your area.",
		}}
		uc := newTestUseCase(repo, client)

		resp, err := uc.Execute(context.Background(), validRequest(draft.ID))

		// Отказ бэкенда - исход отправки, а не ошибка транспорта
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusFailed), resp.Status)
		require.NotNil(t, resp.FailureDetail)
		assert.Equal(t, "No providers available in your area.", *resp.FailureDetail)

		require.NotNil(t, repo.outcome)
		assert.Equal(t, domain.StatusFailed, repo.outcome.status)
		require.NotNil(t, repo.outcome.failureDetail)
		assert.Equal(t, "No providers available in your area.", *repo.outcome.failureDetail)
		assert.Nil(t, repo.outcome.bookingID)
	})

	t.Run("rejection without detail gets a generic message", func(t *testing.T) {
		draft := confirmedDraft()
		repo := &fakeRepo{draft: draft}
		client := &fakeClient{err: &bookingapi.BookingRejectedError{StatusCode: 500}}
		uc := newTestUseCase(repo, client)

		resp, err := uc.Execute(context.Background(), validRequest(draft.ID))
		require.NoError(t, err)
		require.NotNil(t, resp.FailureDetail)
		assert.Equal(t, "The booking was rejected. Please review your details and try again.", *resp.FailureDetail)
	})

	t.Run("network failure gets a retry message", func(t *testing.T) {
		draft := confirmedDraft()
		repo := &fakeRepo{draft: draft}
		client := &fakeClient{err: errors.New("dial tcp: connection refused")}
		uc := newTestUseCase(repo, client)

		resp, err := uc.Execute(context.Background(), validRequest(draft.ID))
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusFailed), resp.Status)
		require.NotNil(t, resp.FailureDetail)
		assert.Equal(t, "Could not reach the booking service. Please try again.", *resp.FailureDetail)
	})
}

func TestExecuteUnauthorized(t *testing.T) {
	draft := confirmedDraft()
	repo := &fakeRepo{draft: draft}
	client := &fakeClient{err: bookingapi.ErrUnauthorized}
	uc := newTestUseCase(repo, client)

	_, err := uc.Execute(context.Background(), validRequest(draft.ID))
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Черновик освобожден: submitting -> confirming, данные не потеряны
	require.Len(t, repo.updateStatusCalls, 2)
	assert.Equal(t, statusTransition{domain.StatusSubmitting, domain.StatusConfirming}, repo.updateStatusCalls[1])
	assert.Equal(t, domain.StatusConfirming, repo.draft.Status)
	assert.Nil(t, repo.outcome)
}
