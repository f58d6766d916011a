package domain

import (
	"time"

	"github.com/google/uuid"
)

// DraftStatus статус черновика бронирования
type DraftStatus string

const (
	// StatusEditing черновик заполняется пользователем
	StatusEditing DraftStatus = "editing"

	// StatusConfirming черновик проверен и ожидает подтверждения пользователя
	StatusConfirming DraftStatus = "confirming"

	// StatusSubmitting черновик отправляется на бэкенд (ровно один запрос в полете)
	StatusSubmitting DraftStatus = "submitting"

	// StatusSucceeded бэкенд принял бронирование; черновик ждет закрытия диалога
	StatusSucceeded DraftStatus = "succeeded"

	// StatusFailed бэкенд отклонил бронирование; данные сохранены, можно править и повторить
	StatusFailed DraftStatus = "failed"
)

// BookingDraft черновик бронирования - состояние диалога на время его жизни
// Создается при открытии диалога, удаляется при закрытии или после
// подтвержденного пользователем успеха
type BookingDraft struct {
	ID uuid.UUID

	// Бронируемая услуга с денормализованными данными для шага подтверждения
	ServiceID    int64
	ServiceName  string
	ServicePrice *float64

	// Выбор даты и времени
	SelectedDate *time.Time // только дата, время обнулено
	SelectedSlot *string    // метка слота из DailyTimeSlots, например "10:00 AM"

	// Контактные данные
	Name        string
	Contact     string
	Description string
	Address     string

	// Координаты; до определения местоположения - fallback
	Latitude  float64
	Longitude float64

	// AddressRevision растет при каждом изменении черновика
	// Отсечение устаревших ответов обратного геокодирования
	AddressRevision int64

	Status        DraftStatus
	FailureDetail *string // сообщение последней неудачной отправки
	BookingID     *int64  // ID бронирования на бэкенде после успеха

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsEditable возвращает true, если поля черновика можно менять
// Черновик после неудачной отправки снова редактируем
func (d *BookingDraft) IsEditable() bool {
	return d.Status == StatusEditing || d.Status == StatusFailed
}

// CanConfirm возвращает true, если черновик можно перевести на шаг подтверждения
func (d *BookingDraft) CanConfirm() bool {
	return d.IsEditable()
}

// CanReopen возвращает true, если шаг подтверждения можно отменить
func (d *BookingDraft) CanReopen() bool {
	return d.Status == StatusConfirming
}

// CanSubmit возвращает true, если черновик готов к отправке
func (d *BookingDraft) CanSubmit() bool {
	return d.Status == StatusConfirming
}

// CanAcknowledge возвращает true, если успех можно подтвердить и закрыть диалог
func (d *BookingDraft) CanAcknowledge() bool {
	return d.Status == StatusSucceeded
}

// SelectedTimeSlot возвращает выбранный слот, если он задан и известен
func (d *BookingDraft) SelectedTimeSlot() (TimeSlot, bool) {
	if d.SelectedSlot == nil {
		return TimeSlot{}, false
	}
	return SlotByLabel(*d.SelectedSlot)
}

// Credential bearer-токен пользователя для вызовов бэкенда
// Передается явно в операции, которым нужна аутентификация
type Credential struct {
	Token string
}

// IsZero возвращает true, если токен отсутствует
func (c Credential) IsZero() bool {
	return c.Token == ""
}
