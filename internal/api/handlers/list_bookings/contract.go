package list_bookings

import (
	"context"

	"github.com/m04kA/HSM-BookingGateway/internal/integrations/bookingapi"
)

type BookingAPIClient interface {
	ListBookings(ctx context.Context, token string) ([]bookingapi.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
