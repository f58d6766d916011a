package bookingapi

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена на бэкенде
	ErrServiceNotFound = errors.New("bookingapi client: service not found")

	// ErrUnauthorized возвращается, когда бэкенд отверг учетные данные
	ErrUnauthorized = errors.New("bookingapi client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе бэкенда
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)

// BookingRejectedError бэкенд отклонил бронирование (non-2xx)
// Detail содержит человекочитаемое сообщение сервера, если оно было в ответе
type BookingRejectedError struct {
	StatusCode int
	Detail     string
}

// Error реализует интерфейс error
func (e *BookingRejectedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("bookingapi client: booking rejected with status %d", e.StatusCode)
	}
	return fmt.Sprintf("bookingapi client: booking rejected with status %d: %s", e.StatusCode, e.Detail)
}
