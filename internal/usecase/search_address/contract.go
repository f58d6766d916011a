package search_address

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	"github.com/m04kA/HSM-BookingGateway/internal/integrations/geocoder"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingDraft, error)
	Update(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingDraft, error)
}

// GeocoderClient интерфейс клиента геокодера
type GeocoderClient interface {
	Search(ctx context.Context, query string) (*geocoder.Place, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
