package update_draft

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HSM-BookingGateway/internal/service/drafts"
)

const (
	msgInvalidDraftID     = "invalid draft ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgDraftNotFound      = "draft not found"
	msgDraftNotEditable   = "draft is not editable"
	msgDateInPast         = "selected date is in the past"
	msgSlotUnknown        = "unknown time slot"
	msgSlotRequiresDate   = "select a date before choosing a time slot"
	msgSlotNotSelectable  = "this time slot is no longer available"
	msgInvalidCoordinates = "invalid coordinates"
	msgInvalidInput       = "invalid input data"
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

// Handle PATCH /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("PATCH /drafts/{id} - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(draftID)
	if err != nil {
		h.logger.Warn("PATCH /drafts/{id} - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	draft, err := h.service.Update(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("PATCH /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, drafts.ErrDraftNotEditable):
			h.logger.Warn("PATCH /drafts/{id} - Draft not editable: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgDraftNotEditable)

		case errors.Is(err, drafts.ErrDateInPast):
			h.logger.Warn("PATCH /drafts/{id} - Date in past: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, drafts.ErrSlotRequiresDate):
			h.logger.Warn("PATCH /drafts/{id} - Slot without date: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgSlotRequiresDate)

		case errors.Is(err, drafts.ErrSlotUnknown):
			h.logger.Warn("PATCH /drafts/{id} - Unknown slot: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgSlotUnknown)

		case errors.Is(err, drafts.ErrSlotNotSelectable):
			h.logger.Warn("PATCH /drafts/{id} - Slot not selectable: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgSlotNotSelectable)

		case errors.Is(err, drafts.ErrInvalidCoordinates):
			h.logger.Warn("PATCH /drafts/{id} - Invalid coordinates: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgInvalidCoordinates)

		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("PATCH /drafts/{id} - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /drafts/{id} - Failed to update draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, draft)
}
