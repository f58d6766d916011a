package acknowledge_draft

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HSM-BookingGateway/internal/service/drafts"
)

const (
	msgInvalidDraftID = "invalid draft ID"
	msgDraftNotFound  = "draft not found"
	msgNotSucceeded   = "draft has no successful submission to acknowledge"
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

// Handle POST /api/v1/drafts/{draftId}/acknowledge
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/acknowledge - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	result, err := h.service.Acknowledge(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/acknowledge - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, drafts.ErrNotSucceeded):
			h.logger.Warn("POST /drafts/{id}/acknowledge - Nothing to acknowledge: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgNotSucceeded)

		default:
			h.logger.Error("POST /drafts/{id}/acknowledge - Failed to acknowledge: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/acknowledge - Dialog closed: draft_id=%s", draftID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
