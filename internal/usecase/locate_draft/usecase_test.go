package locate_draft

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	draftRepo "github.com/m04kA/HSM-BookingGateway/internal/infra/storage/draft"
	"github.com/m04kA/HSM-BookingGateway/internal/integrations/geocoder"
)

// fakeRepo репозиторий в памяти для тестов
type fakeRepo struct {
	draft *domain.BookingDraft

	// Имитация конкурентной правки между Update и UpdateAddressIfRevision
	bumpRevisionAfterUpdate bool

	addressWrites []string
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.BookingDraft, error) {
	if r.draft == nil || r.draft.ID != id {
		return nil, draftRepo.ErrDraftNotFound
	}
	copied := *r.draft
	return &copied, nil
}

func (r *fakeRepo) Update(_ context.Context, draft *domain.BookingDraft) (*domain.BookingDraft, error) {
	copied := *draft
	r.draft = &copied
	if r.bumpRevisionAfterUpdate {
		r.draft.AddressRevision++
	}
	returned := *draft
	return &returned, nil
}

func (r *fakeRepo) UpdateAddressIfRevision(_ context.Context, id uuid.UUID, address string, revision int64) (bool, error) {
	if r.draft == nil || r.draft.ID != id || r.draft.AddressRevision != revision {
		return false, nil
	}
	r.draft.Address = address
	r.draft.AddressRevision++
	r.addressWrites = append(r.addressWrites, address)
	return true, nil
}

// fakeGeocoder клиент геокодера для тестов
type fakeGeocoder struct {
	place *geocoder.Place
	err   error
	calls int
}

func (g *fakeGeocoder) Reverse(_ context.Context, _, _ float64) (*geocoder.Place, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.place, nil
}

// noopLogger логгер-заглушка
type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func editableDraft() *domain.BookingDraft {
	return &domain.BookingDraft{
		ID:        uuid.New(),
		ServiceID: 7,
		Latitude:  domain.FallbackLatitude,
		Longitude: domain.FallbackLongitude,
		Status:    domain.StatusEditing,
	}
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &fakeGeocoder{}, noopLogger{})

	t.Run("missing draft id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{Latitude: 31.5, Longitude: 74.3})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("coordinates out of range", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{DraftID: uuid.New(), Latitude: 91, Longitude: 74.3})
		assert.ErrorIs(t, err, ErrInvalidCoordinates)

		_, err = uc.Execute(context.Background(), &Request{DraftID: uuid.New(), Latitude: 31.5, Longitude: 181})
		assert.ErrorIs(t, err, ErrInvalidCoordinates)
	})

	t.Run("draft not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{DraftID: uuid.New(), Latitude: 31.5, Longitude: 74.3})
		assert.ErrorIs(t, err, ErrDraftNotFound)
	})
}

func TestExecuteNotEditable(t *testing.T) {
	draft := editableDraft()
	draft.Status = domain.StatusConfirming
	repo := &fakeRepo{draft: draft}
	geo := &fakeGeocoder{}
	uc := NewUseCase(repo, geo, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID, Latitude: 31.5, Longitude: 74.3})
	assert.ErrorIs(t, err, ErrDraftNotEditable)
	assert.Zero(t, geo.calls)
}

func TestExecuteResolvesAddress(t *testing.T) {
	draft := editableDraft()
	repo := &fakeRepo{draft: draft}
	geo := &fakeGeocoder{place: &geocoder.Place{DisplayName: "Main Street 5, Lahore, Punjab"}}
	uc := NewUseCase(repo, geo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID, Latitude: 31.5204, Longitude: 74.3587})
	require.NoError(t, err)

	assert.Equal(t, 31.5204, resp.Latitude)
	assert.Equal(t, 74.3587, resp.Longitude)
	assert.True(t, resp.AddressResolved)
	assert.Equal(t, "Main Street 5, Lahore, Punjab", resp.Address)
	assert.Equal(t, int64(1), resp.AddressRevision)
	assert.Equal(t, []string{"Main Street 5, Lahore, Punjab"}, repo.addressWrites)
}

func TestExecuteGeocoderFailureIsSilent(t *testing.T) {
	draft := editableDraft()
	repo := &fakeRepo{draft: draft}
	geo := &fakeGeocoder{err: geocoder.ErrInternal}
	uc := NewUseCase(repo, geo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID, Latitude: 31.5204, Longitude: 74.3587})

	// Позиция установлена, отказ геокодера не всплывает наружу
	require.NoError(t, err)
	assert.False(t, resp.AddressResolved)
	assert.Empty(t, resp.Address)
	assert.Equal(t, 31.5204, repo.draft.Latitude)
	assert.Empty(t, repo.addressWrites)
}

func TestExecuteStaleAddressIsDiscarded(t *testing.T) {
	draft := editableDraft()
	repo := &fakeRepo{draft: draft, bumpRevisionAfterUpdate: true}
	geo := &fakeGeocoder{place: &geocoder.Place{DisplayName: "Main Street 5"}}
	uc := NewUseCase(repo, geo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID, Latitude: 31.5204, Longitude: 74.3587})
	require.NoError(t, err)

	// Черновик успели поменять - ответ геокодера отброшен
	assert.False(t, resp.AddressResolved)
	assert.Empty(t, repo.addressWrites)
}

func TestExecuteResetsFailedDraft(t *testing.T) {
	detail := "Service provider is fully booked."
	draft := editableDraft()
	draft.Status = domain.StatusFailed
	draft.FailureDetail = &detail
	repo := &fakeRepo{draft: draft}
	geo := &fakeGeocoder{err: errors.New("timeout")}
	uc := NewUseCase(repo, geo, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID, Latitude: 31.5204, Longitude: 74.3587})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusEditing, repo.draft.Status)
	assert.Nil(t, repo.draft.FailureDetail)
}

func TestExecuteTruncatesLongAddress(t *testing.T) {
	draft := editableDraft()
	repo := &fakeRepo{draft: draft}
	geo := &fakeGeocoder{place: &geocoder.Place{DisplayName: strings.Repeat("улица", 150)}}
	uc := NewUseCase(repo, geo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID, Latitude: 31.5204, Longitude: 74.3587})
	require.NoError(t, err)

	// Обрезка до лимита схемы не разрывает руну
	require.True(t, resp.AddressResolved)
	assert.LessOrEqual(t, len(resp.Address), domain.MaxAddressLength)
	assert.True(t, utf8.ValidString(resp.Address))
	assert.Equal(t, []string{resp.Address}, repo.addressWrites)
}
