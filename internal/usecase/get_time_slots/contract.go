package get_time_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingDraft, error)
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
