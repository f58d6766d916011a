package search_address

import (
	searchAddress "github.com/m04kA/HSM-BookingGateway/internal/usecase/search_address"
)

// SearchRequest HTTP request model
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchResponse HTTP response model: найденный адрес и новая позиция
type SearchResponse struct {
	Address         string  `json:"address"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	AddressRevision int64   `json:"addressRevision"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchAddress.Response) *SearchResponse {
	return &SearchResponse{
		Address:         resp.Address,
		Latitude:        resp.Latitude,
		Longitude:       resp.Longitude,
		AddressRevision: resp.AddressRevision,
	}
}
