package search_address

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrDraftNotEditable возвращается при попытке изменить черновик вне режима редактирования
	ErrDraftNotEditable = errors.New("draft is not editable")

	// ErrAddressNotFound возвращается, когда геокодер не нашел адрес
	// Позиция черновика при этом не меняется
	ErrAddressNotFound = errors.New("address not found")

	// ErrGeocoderUnavailable возвращается, когда геокодер недоступен
	ErrGeocoderUnavailable = errors.New("geocoder is unavailable")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
