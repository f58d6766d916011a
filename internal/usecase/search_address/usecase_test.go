package search_address

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	draftRepo "github.com/m04kA/HSM-BookingGateway/internal/infra/storage/draft"
	"github.com/m04kA/HSM-BookingGateway/internal/integrations/geocoder"
)

// fakeRepo репозиторий в памяти для тестов
type fakeRepo struct {
	draft       *domain.BookingDraft
	updateCalls int
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.BookingDraft, error) {
	if r.draft == nil || r.draft.ID != id {
		return nil, draftRepo.ErrDraftNotFound
	}
	copied := *r.draft
	return &copied, nil
}

func (r *fakeRepo) Update(_ context.Context, draft *domain.BookingDraft) (*domain.BookingDraft, error) {
	r.updateCalls++
	copied := *draft
	r.draft = &copied
	returned := *draft
	return &returned, nil
}

// fakeGeocoder клиент геокодера для тестов
type fakeGeocoder struct {
	place *geocoder.Place
	err   error
	query string
}

func (g *fakeGeocoder) Search(_ context.Context, query string) (*geocoder.Place, error) {
	g.query = query
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
		_, err := uc.Execute(context.Background(), &Request{Query: "Main Street"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("blank query", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{DraftID: uuid.New(), Query: "   "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("draft not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{DraftID: uuid.New(), Query: "Main Street"})
		assert.ErrorIs(t, err, ErrDraftNotFound)
	})
}

func TestExecuteFirstMatchWins(t *testing.T) {
	draft := editableDraft()
	repo := &fakeRepo{draft: draft}
	geo := &fakeGeocoder{place: &geocoder.Place{
		Lat:         "31.5204",
		Lon:         "74.3587",
		DisplayName: "Main Street 5, Lahore, Punjab",
	}}
	uc := NewUseCase(repo, geo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID, Query: "  Main Street 5  "})
	require.NoError(t, err)

	// Запрос уходит геокодеру без крайних пробелов
	assert.Equal(t, "Main Street 5", geo.query)

	assert.Equal(t, "Main Street 5, Lahore, Punjab", resp.Address)
	assert.Equal(t, 31.5204, resp.Latitude)
	assert.Equal(t, 74.3587, resp.Longitude)
	assert.Equal(t, "Main Street 5, Lahore, Punjab", repo.draft.Address)
}

func TestExecuteNoResultsLeavesDraftUntouched(t *testing.T) {
	draft := editableDraft()
	draft.Address = "Old Address 1"
	repo := &fakeRepo{draft: draft}
	geo := &fakeGeocoder{err: geocoder.ErrNoResults}
	uc := NewUseCase(repo, geo, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID, Query: "nowhere at all"})
	assert.ErrorIs(t, err, ErrAddressNotFound)

	// Позиция и адрес не изменились
	assert.Zero(t, repo.updateCalls)
	assert.Equal(t, "Old Address 1", repo.draft.Address)
	assert.Equal(t, domain.FallbackLatitude, repo.draft.Latitude)
}

func TestExecuteGeocoderUnavailable(t *testing.T) {
	t.Run("transport failure", func(t *testing.T) {
		draft := editableDraft()
		repo := &fakeRepo{draft: draft}
		geo := &fakeGeocoder{err: errors.New("dial tcp: connection refused")}
		uc := NewUseCase(repo, geo, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID, Query: "Main Street"})
		assert.ErrorIs(t, err, ErrGeocoderUnavailable)
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("unparseable coordinates", func(t *testing.T) {
		draft := editableDraft()
		repo := &fakeRepo{draft: draft}
		geo := &fakeGeocoder{place: &geocoder.Place{Lat: "not-a-number", Lon: "74.3587"}}
		uc := NewUseCase(repo, geo, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID, Query: "Main Street"})
		assert.ErrorIs(t, err, ErrGeocoderUnavailable)
		assert.Zero(t, repo.updateCalls)
	})
}

func TestExecuteNotEditable(t *testing.T) {
	draft := editableDraft()
	draft.Status = domain.StatusSubmitting
	repo := &fakeRepo{draft: draft}
	uc := NewUseCase(repo, &fakeGeocoder{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID, Query: "Main Street"})
	assert.ErrorIs(t, err, ErrDraftNotEditable)
}

func TestExecuteResetsFailedDraft(t *testing.T) {
	detail := "No providers available in your area."
	draft := editableDraft()
	draft.Status = domain.StatusFailed
	draft.FailureDetail = &detail
	repo := &fakeRepo{draft: draft}
	geo := &fakeGeocoder{place: &geocoder.Place{Lat: "31.5", Lon: "74.3", DisplayName: "Main Street 5"}}
	uc := NewUseCase(repo, geo, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: draft.ID, Query: "Main Street 5"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusEditing, repo.draft.Status)
	assert.Nil(t, repo.draft.FailureDetail)
}
