package domain

// DateFormat формат даты YYYY-MM-DD, общий для API и бэкенда
const DateFormat = "2006-01-02"

// Координаты по умолчанию, пока местоположение не определено
// Совпадают с центром карты исходного диалога бронирования
const (
	FallbackLatitude  = 30.4354
	FallbackLongitude = 72.3486
)

// Ограничения полей, продиктованные схемой бэкенда
const (
	MaxNameLength    = 255
	MaxContactLength = 255
	MaxAddressLength = 512
)

// Границы валидных координат
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)
