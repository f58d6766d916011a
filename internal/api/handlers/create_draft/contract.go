package create_draft

import (
	"context"

	"github.com/m04kA/HSM-BookingGateway/internal/service/drafts/models"
)

type DraftService interface {
	Open(ctx context.Context, req *models.OpenDraftRequest) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
