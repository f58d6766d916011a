package domain

import (
	"fmt"
	"unicode/utf8"
)

// ValidateCoordinates проверяет, что координаты лежат в допустимых границах
func ValidateCoordinates(latitude, longitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return fmt.Errorf("latitude %v is out of range [%v, %v]", latitude, MinLatitude, MaxLatitude)
	}
	if longitude < MinLongitude || longitude > MaxLongitude {
		return fmt.Errorf("longitude %v is out of range [%v, %v]", longitude, MinLongitude, MaxLongitude)
	}
	return nil
}

// TruncateAddress обрезает адрес до лимита схемы, не разрывая руну
// Длинные display_name геокодера могут быть не латиницей - срез по байтам
// дал бы невалидный UTF-8
func TruncateAddress(address string) string {
	if len(address) <= MaxAddressLength {
		return address
	}
	cut := MaxAddressLength
	for cut > 0 && !utf8.RuneStart(address[cut]) {
		cut--
	}
	return address[:cut]
}
