package discard_draft

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

// Handle DELETE /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("DELETE /drafts/{id} - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	if err := h.service.Discard(r.Context(), draftID); err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("DELETE /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		default:
			h.logger.Error("DELETE /drafts/{id} - Failed to discard draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{id} - Draft discarded: draft_id=%s", draftID)
	handlers.RespondNoContent(w)
}
