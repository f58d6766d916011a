package search_address

import (
	"github.com/google/uuid"
)

// Request запрос на поиск адреса по произвольному тексту
type Request struct {
	DraftID uuid.UUID
	Query   string
}

// Response результат поиска: найденный адрес и новая позиция черновика
type Response struct {
	DraftID         uuid.UUID
	Address         string
	Latitude        float64
	Longitude       float64
	AddressRevision int64
}
