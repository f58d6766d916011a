package reopen_draft

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
	msgNotConfirming  = "draft is not awaiting confirmation"
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

// Handle POST /api/v1/drafts/{draftId}/reopen
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/reopen - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	draft, err := h.service.Reopen(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/reopen - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, drafts.ErrNotConfirming):
			h.logger.Warn("POST /drafts/{id}/reopen - Draft not confirming: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgNotConfirming)

		default:
			h.logger.Error("POST /drafts/{id}/reopen - Failed to reopen draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/reopen - Draft reopened: draft_id=%s", draftID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
