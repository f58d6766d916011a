package reopen_draft

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/service/drafts/models"
)

type DraftService interface {
	Reopen(ctx context.Context, id uuid.UUID) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
