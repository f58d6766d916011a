package drafts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	"github.com/m04kA/HSM-BookingGateway/internal/integrations/bookingapi"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	Create(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingDraft, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingDraft, error)
	Update(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingDraft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingAPIClient интерфейс клиента бэкенда маркетплейса
type BookingAPIClient interface {
	GetService(ctx context.Context, serviceID int64) (*bookingapi.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
