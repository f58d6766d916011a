package create_draft

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HSM-BookingGateway/internal/service/drafts"
	"github.com/m04kA/HSM-BookingGateway/internal/service/drafts/models"
)

const (
	msgInvalidServiceID = "invalid service ID"
	msgServiceNotFound  = "service not found"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/services/{serviceId}/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /services/{id}/drafts - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	draft, err := h.service.Open(r.Context(), &models.OpenDraftRequest{ServiceID: serviceID})
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrServiceNotFound):
			h.logger.Warn("POST /services/{id}/drafts - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("POST /services/{id}/drafts - Invalid input: service_id=%d", serviceID)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		default:
			h.logger.Error("POST /services/{id}/drafts - Failed to open draft: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services/{id}/drafts - Draft opened: draft_id=%s, service_id=%d", draft.ID, serviceID)
	handlers.RespondJSON(w, http.StatusCreated, draft)
}
