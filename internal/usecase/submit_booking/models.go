package submit_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSM-BookingGateway/internal/domain"
)

// Request запрос на отправку подтвержденного черновика
type Request struct {
	DraftID    uuid.UUID
	Credential domain.Credential
}

// Response результат отправки
type Response struct {
	DraftID       uuid.UUID
	Status        string
	BookingID     *int64
	FailureDetail *string
	SubmittedAt   time.Time
}
