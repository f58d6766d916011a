package submit_draft

import (
	submitBooking "github.com/m04kA/HSM-BookingGateway/internal/usecase/submit_booking"
)

// SubmitResponse HTTP response model
// При статусе failed detail содержит дословное сообщение бэкенда
type SubmitResponse struct {
	Status    string  `json:"status"` // "succeeded" или "failed"
	BookingID *int64  `json:"bookingId,omitempty"`
	Detail    *string `json:"detail,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitResponse {
	return &SubmitResponse{
		Status:    resp.Status,
		BookingID: resp.BookingID,
		Detail:    resp.FailureDetail,
	}
}
