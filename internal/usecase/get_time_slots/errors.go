package get_time_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
