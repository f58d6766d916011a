package geocoder

import (
	"fmt"
	"strconv"
)

// Place результат геокодирования
// Nominatim отдает координаты строками
type Place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Coordinates парсит координаты места в числа
func (p *Place) Coordinates() (lat, lon float64, err error) {
	lat, err = strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid latitude %q", ErrInvalidResponse, p.Lat)
	}
	lon, err = strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid longitude %q", ErrInvalidResponse, p.Lon)
	}
	return lat, lon, nil
}
