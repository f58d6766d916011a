package bookingapi

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Service модель услуги с бэкенда маркетплейса
type Service struct {
	ID           int64     `json:"id"`
	Name         string    `json:"service_name"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Price        FlexPrice `json:"price"`
	ProviderName string    `json:"provider_name"`
	Images       []string  `json:"images"`
}

// FlexPrice цена услуги
// Бэкенд сериализует Decimal строкой ("350.00"), но допускаем и число
type FlexPrice struct {
	Value *float64
}

// UnmarshalJSON принимает число, строку с числом или null
func (p *FlexPrice) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		p.Value = nil
		return nil
	}

	var asNumber float64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		p.Value = &asNumber
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return fmt.Errorf("%w: unexpected price %s", ErrInvalidResponse, string(data))
	}
	parsed, err := strconv.ParseFloat(asString, 64)
	if err != nil {
		return fmt.Errorf("%w: unexpected price %q", ErrInvalidResponse, asString)
	}
	p.Value = &parsed
	return nil
}

// CreateBookingRequest тело запроса создания бронирования
// Поля и форматы соответствуют контракту бэкенда:
// date - YYYY-MM-DD, time - HH:MM:SS (24 часа)
type CreateBookingRequest struct {
	Service     int64   `json:"service"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Name        string  `json:"name"`
	Contact     string  `json:"contact"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Booking модель бронирования с бэкенда
type Booking struct {
	ID          int64   `json:"id"`
	Service     int64   `json:"service"`
	ServiceName string  `json:"service_name"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Name        string  `json:"name"`
	Contact     string  `json:"contact"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CreatedAt   string  `json:"created_at"`
}

// errorResponse тело ошибки бэкенда
// DRF кладет человекочитаемое сообщение в поле detail
type errorResponse struct {
	Detail string `json:"detail"`
}
