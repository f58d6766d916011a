package submit_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
	"github.com/m04kA/HSM-BookingGateway/internal/integrations/bookingapi"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingDraft, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.DraftStatus) (bool, error)
	SetOutcome(ctx context.Context, id uuid.UUID, status domain.DraftStatus, failureDetail *string, bookingID *int64) error
}

// BookingAPIClient интерфейс клиента бэкенда маркетплейса
type BookingAPIClient interface {
	CreateBooking(ctx context.Context, token string, booking *bookingapi.CreateBookingRequest) (*bookingapi.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
