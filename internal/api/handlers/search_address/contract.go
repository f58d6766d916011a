package search_address

import (
	"context"

	searchAddress "github.com/m04kA/HSM-BookingGateway/internal/usecase/search_address"
)

type SearchAddressUseCase interface {
	Execute(ctx context.Context, req *searchAddress.Request) (*searchAddress.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
