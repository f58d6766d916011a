package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/HSM-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HSM-BookingGateway/internal/api/middleware"
	"github.com/m04kA/HSM-BookingGateway/internal/integrations/bookingapi"
)

const (
	msgAuthRequired = "authentication required"
	msgUnauthorized = "session expired, please sign in again"
)

type Handler struct {
	apiClient BookingAPIClient
	logger    Logger
}

func NewHandler(apiClient BookingAPIClient, logger Logger) *Handler {
	return &Handler{
		apiClient: apiClient,
		logger:    logger,
	}
}

// Handle GET /api/v1/bookings
// Прокси списка бронирований пользователя с бэкенда - цель обновления
// после подтвержденного успеха отправки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	credential, ok := middleware.GetCredential(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing credential")
		handlers.RespondUnauthorized(w, msgAuthRequired)
		return
	}

	bookings, err := h.apiClient.ListBookings(r.Context(), credential.Token)
	if err != nil {
		switch {
		case errors.Is(err, bookingapi.ErrUnauthorized):
			h.logger.Warn("GET /bookings - Backend rejected credentials")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if bookings == nil {
		bookings = []bookingapi.Booking{}
	}

	h.logger.Info("GET /bookings - Retrieved %d bookings", len(bookings))
	handlers.RespondJSON(w, http.StatusOK, bookings)
}
