package locate_draft

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrDraftNotEditable возвращается при попытке изменить черновик вне режима редактирования
	ErrDraftNotEditable = errors.New("draft is not editable")

	// ErrInvalidCoordinates возвращается при координатах вне допустимых границ
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
