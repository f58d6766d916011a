package locate_draft

import (
	locateDraft "github.com/m04kA/HSM-BookingGateway/internal/usecase/locate_draft"
)

// LocateRequest HTTP request model
// Координаты с клика по карте или из геолокации устройства
type LocateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocateResponse HTTP response model
// addressResolved=false означает, что обратное геокодирование не удалось
// или его результат устарел; позиция при этом установлена
type LocateResponse struct {
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Address         string  `json:"address"`
	AddressResolved bool    `json:"addressResolved"`
	AddressRevision int64   `json:"addressRevision"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *locateDraft.Response) *LocateResponse {
	return &LocateResponse{
		Latitude:        resp.Latitude,
		Longitude:       resp.Longitude,
		Address:         resp.Address,
		AddressResolved: resp.AddressResolved,
		AddressRevision: resp.AddressRevision,
	}
}
