package search_address

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSM-BookingGateway/internal/api/handlers"
	searchAddress "github.com/m04kA/HSM-BookingGateway/internal/usecase/search_address"
)

const (
	msgInvalidDraftID      = "invalid draft ID"
	msgInvalidRequestBody  = "invalid request body"
	msgDraftNotFound       = "draft not found"
	msgDraftNotEditable    = "draft is not editable"
	msgAddressNotFound     = "Address not found"
	msgGeocoderUnavailable = "address search is temporarily unavailable"
)

type Handler struct {
	useCase SearchAddressUseCase
	logger  Logger
}

func NewHandler(useCase SearchAddressUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/address/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	draftID, err := uuid.Parse(vars["draftId"])
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/address/search - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	var req SearchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts/{id}/address/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &searchAddress.Request{
		DraftID: draftID,
		Query:   req.Query,
	})
	if err != nil {
		switch {
		case errors.Is(err, searchAddress.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/address/search - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, searchAddress.ErrDraftNotEditable):
			h.logger.Warn("POST /drafts/{id}/address/search - Draft not editable: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgDraftNotEditable)

		case errors.Is(err, searchAddress.ErrAddressNotFound):
			h.logger.Info("POST /drafts/{id}/address/search - Address not found: draft_id=%s, query=%q", draftID, req.Query)
			handlers.RespondNotFound(w, msgAddressNotFound)

		case errors.Is(err, searchAddress.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{id}/address/search - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, searchAddress.ErrGeocoderUnavailable):
			h.logger.Error("POST /drafts/{id}/address/search - Geocoder unavailable: draft_id=%s, error=%v", draftID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgGeocoderUnavailable)

		default:
			h.logger.Error("POST /drafts/{id}/address/search - Failed to search address: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
