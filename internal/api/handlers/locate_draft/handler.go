package locate_draft

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingGateway/internal/api/handlers"
	locateDraft "github.com/m04kA/HSM-BookingGateway/internal/usecase/locate_draft"
)

const (
	msgInvalidDraftID     = "invalid draft ID"
	msgInvalidRequestBody = "invalid request body"
	msgDraftNotFound      = "draft not found"
	msgDraftNotEditable   = "draft is not editable"
	msgInvalidCoordinates = "invalid coordinates"
)

type Handler struct {
	useCase LocateDraftUseCase
	logger  Logger
}

func NewHandler(useCase LocateDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/locate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/locate - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	var req LocateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts/{id}/locate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &locateDraft.Request{
		DraftID:   draftID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, locateDraft.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/locate - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, locateDraft.ErrDraftNotEditable):
			h.logger.Warn("POST /drafts/{id}/locate - Draft not editable: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgDraftNotEditable)

		case errors.Is(err, locateDraft.ErrInvalidCoordinates):
			h.logger.Warn("POST /drafts/{id}/locate - Invalid coordinates: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidCoordinates)

		case errors.Is(err, locateDraft.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{id}/locate - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /drafts/{id}/locate - Failed to locate draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
