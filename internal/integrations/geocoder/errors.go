package geocoder

import "errors"

var (
	// ErrNoResults возвращается, когда геокодер не нашел ни одного места
	ErrNoResults = errors.New("geocoder client: no results")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geocoder client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе геокодера
	ErrInvalidResponse = errors.New("geocoder client: invalid response")
)
