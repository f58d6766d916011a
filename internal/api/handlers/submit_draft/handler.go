package submit_draft

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingGateway/internal/api/handlers"
	"github.com/m04kA/HSM-BookingGateway/internal/api/middleware"
	submitBooking "github.com/m04kA/HSM-BookingGateway/internal/usecase/submit_booking"
)

const (
	msgInvalidDraftID  = "invalid draft ID"
	msgDraftNotFound   = "draft not found"
	msgNotConfirming   = "draft is not awaiting confirmation"
	msgAlreadyInFlight = "submission is already in progress"
	msgAuthRequired    = "authentication required"
	msgUnauthorized    = "session expired, please sign in again"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/submit
// Исход отправки (succeeded/failed) - это результат операции, а не ошибка
// транспорта: оба возвращаются с кодом 200, детали неудачи в теле
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/submit - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	credential, ok := middleware.GetCredential(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/submit - Missing credential: draft_id=%s", draftID)
		handlers.RespondUnauthorized(w, msgAuthRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{
		DraftID:    draftID,
		Credential: credential,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, submitBooking.ErrNotConfirming):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not confirmed: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgNotConfirming)

		case errors.Is(err, submitBooking.ErrAlreadyInFlight):
			h.logger.Warn("POST /drafts/{id}/submit - Submission already in flight: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgAlreadyInFlight)

		case errors.Is(err, submitBooking.ErrAuthRequired):
			h.logger.Warn("POST /drafts/{id}/submit - Auth required: draft_id=%s", draftID)
			handlers.RespondUnauthorized(w, msgAuthRequired)

		case errors.Is(err, submitBooking.ErrUnauthorized):
			h.logger.Warn("POST /drafts/{id}/submit - Backend rejected credentials: draft_id=%s", draftID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, submitBooking.ErrValidation):
			h.logger.Warn("POST /drafts/{id}/submit - Draft no longer submittable: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{id}/submit - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidDraftID)

		default:
			h.logger.Error("POST /drafts/{id}/submit - Failed to submit draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/submit - Submission finished: draft_id=%s, status=%s", draftID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
