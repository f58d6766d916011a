package get_time_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	draftRepo "github.com/m04kA/HSM-BookingGateway/internal/infra/storage/draft"
	"github.com/m04kA/HSM-BookingGateway/pkg/ptr"
)

// fakeRepo репозиторий в памяти для тестов
type fakeRepo struct {
	draft *domain.BookingDraft
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.BookingDraft, error) {
	if r.draft == nil || r.draft.ID != id {
		return nil, draftRepo.ErrDraftNotFound
	}
	copied := *r.draft
	return &copied, nil
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

func newTestUseCase(repo *fakeRepo) *UseCase {
	uc := NewUseCase(repo, noopLogger{})
	uc.timeProvider = &fakeTime{now: testNow}
	return uc
}

func TestExecuteValidation(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DraftID: uuid.New()})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestExecuteWithoutDate(t *testing.T) {
	draft := &domain.BookingDraft{ID: uuid.New(), Status: domain.StatusEditing}
	uc := newTestUseCase(&fakeRepo{draft: draft})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID})
	require.NoError(t, err)

	assert.Nil(t, resp.SelectedDate)
	require.Len(t, resp.Slots, 15)
	for _, slot := range resp.Slots {
		assert.False(t, slot.Selectable, "slot %q", slot.Label)
		assert.False(t, slot.Selected, "slot %q", slot.Label)
	}
}

func TestExecuteForToday(t *testing.T) {
	today := time.Date(2025, time.October, 15, 0, 0, 0, 0, time.Local)
	draft := &domain.BookingDraft{
		ID:           uuid.New(),
		SelectedDate: &today,
		SelectedSlot: ptr.Ptr("4:00 PM"),
		Status:       domain.StatusEditing,
	}
	uc := newTestUseCase(&fakeRepo{draft: draft})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 15)

	// 14:35 - доступны слоты строго позже текущего времени
	byLabel := make(map[string]SlotView, len(resp.Slots))
	for _, slot := range resp.Slots {
		byLabel[slot.Label] = slot
	}

	assert.False(t, byLabel["10:00 AM"].Selectable)
	assert.False(t, byLabel["2:00 PM"].Selectable)
	assert.False(t, byLabel["2:30 PM"].Selectable)
	assert.True(t, byLabel["3:00 PM"].Selectable)
	assert.True(t, byLabel["5:00 PM"].Selectable)

	assert.True(t, byLabel["4:00 PM"].Selected)
	assert.False(t, byLabel["3:00 PM"].Selected)
}

func TestExecuteForFutureDate(t *testing.T) {
	tomorrow := time.Date(2025, time.October, 16, 0, 0, 0, 0, time.Local)
	draft := &domain.BookingDraft{
		ID:           uuid.New(),
		SelectedDate: &tomorrow,
		Status:       domain.StatusEditing,
	}
	uc := newTestUseCase(&fakeRepo{draft: draft})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Selectable, "slot %q", slot.Label)
	}
}

func TestExecuteForPastDate(t *testing.T) {
	yesterday := time.Date(2025, time.October, 14, 0, 0, 0, 0, time.Local)
	draft := &domain.BookingDraft{
		ID:           uuid.New(),
		SelectedDate: &yesterday,
		Status:       domain.StatusEditing,
	}
	uc := newTestUseCase(&fakeRepo{draft: draft})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.False(t, slot.Selectable, "slot %q", slot.Label)
	}
}
