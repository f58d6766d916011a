package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrServiceNotFound возвращается, когда бронируемая услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrDraftNotEditable возвращается при попытке изменить черновик вне режима редактирования
	ErrDraftNotEditable = errors.New("draft is not editable")

	// ErrDateInPast возвращается при выборе даты раньше сегодняшнего дня
	ErrDateInPast = errors.New("selected date is in the past")

	// ErrSlotUnknown возвращается при выборе слота вне фиксированного списка
	ErrSlotUnknown = errors.New("unknown time slot")

	// ErrSlotRequiresDate возвращается при выборе слота без выбранной даты
	ErrSlotRequiresDate = errors.New("time slot requires a selected date")

	// ErrSlotNotSelectable возвращается, когда время слота уже прошло для выбранной даты
	ErrSlotNotSelectable = errors.New("time slot is not selectable")

	// ErrInvalidCoordinates возвращается при некорректных координатах
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrValidation возвращается, когда черновик не проходит проверку перед подтверждением
	ErrValidation = errors.New("draft validation failed")

	// ErrNotConfirming возвращается при отмене подтверждения вне шага подтверждения
	ErrNotConfirming = errors.New("draft is not awaiting confirmation")

	// ErrNotSucceeded возвращается при попытке закрыть диалог до успешной отправки
	ErrNotSucceeded = errors.New("draft has no successful submission to acknowledge")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
