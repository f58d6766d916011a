package get_time_slots

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingGateway/internal/api/handlers"
	getTimeSlots "github.com/m04kA/HSM-BookingGateway/internal/usecase/get_time_slots"
)

const (
	msgInvalidDraftID = "invalid draft ID"
	msgDraftNotFound  = "draft not found"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/drafts/{draftId}/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("GET /drafts/{id}/time-slots - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTimeSlots.Request{DraftID: draftID})
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrDraftNotFound):
			h.logger.Warn("GET /drafts/{id}/time-slots - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		default:
			h.logger.Error("GET /drafts/{id}/time-slots - Failed to get slots: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
