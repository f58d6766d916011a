package submit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAuthRequired возвращается, когда учетные данные пользователя отсутствуют
	ErrAuthRequired = errors.New("authentication required")

	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrNotConfirming возвращается при отправке черновика, не прошедшего шаг подтверждения
	ErrNotConfirming = errors.New("draft is not awaiting confirmation")

	// ErrAlreadyInFlight возвращается, когда отправка этого черновика уже идет
	ErrAlreadyInFlight = errors.New("submission already in flight")

	// ErrValidation возвращается, когда черновик перестал быть отправляемым
	ErrValidation = errors.New("draft validation failed")

	// ErrUnauthorized возвращается, когда бэкенд отверг учетные данные
	// Черновик при этом возвращается в confirming
	ErrUnauthorized = errors.New("backend rejected credentials")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
