package locate_draft

import (
	"context"

	locateDraft "github.com/m04kA/HSM-BookingGateway/internal/usecase/locate_draft"
)

type LocateDraftUseCase interface {
	Execute(ctx context.Context, req *locateDraft.Request) (*locateDraft.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
