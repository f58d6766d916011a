package confirm_draft

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HSM-BookingGateway/internal/service/drafts"
)

const (
	msgInvalidDraftID   = "invalid draft ID"
	msgDraftNotFound    = "draft not found"
	msgDraftNotEditable = "draft is not editable"
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

// Handle POST /api/v1/drafts/{draftId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/confirm - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	draft, err := h.service.Confirm(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/confirm - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, drafts.ErrDraftNotEditable):
			h.logger.Warn("POST /drafts/{id}/confirm - Draft not editable: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgDraftNotEditable)

		case errors.Is(err, drafts.ErrValidation):
			h.logger.Warn("POST /drafts/{id}/confirm - Validation failed: draft_id=%s, error=%v", draftID, err)
			// Сообщение валидации говорит, какое именно поле не заполнено
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /drafts/{id}/confirm - Failed to confirm draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/confirm - Draft confirmed: draft_id=%s", draftID)
	handlers.RespondJSON(w, http.StatusOK, draft)
}
