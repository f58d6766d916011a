package locate_draft

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
	UpdateAddressIfRevision(ctx context.Context, id uuid.UUID, address string, revision int64) (bool, error)
}

// GeocoderClient интерфейс клиента геокодера
type GeocoderClient interface {
	Reverse(ctx context.Context, lat, lon float64) (*geocoder.Place, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
