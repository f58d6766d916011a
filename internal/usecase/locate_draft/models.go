package locate_draft

import (
	"github.com/google/uuid"
)

// Request запрос на установку позиции черновика
// Координаты приходят с клика по карте или из геолокации устройства
type Request struct {
	DraftID   uuid.UUID
	Latitude  float64
	Longitude float64
}

// Response результат установки позиции
// Address заполняется, только если обратное геокодирование успело
// до следующего изменения черновика
type Response struct {
	DraftID         uuid.UUID
	Latitude        float64
	Longitude       float64
	Address         string
	AddressResolved bool
	AddressRevision int64
}
