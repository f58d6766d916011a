package domain

import (
	"time"

	"github.com/m04kA/HSM-BookingGateway/pkg/types"
)

// TimeSlot временной слот дня с отображаемой меткой и временем начала
type TimeSlot struct {
	Label string           // метка в 12-часовом формате, например "10:00 AM"
	Start types.TimeString // время начала в 24-часовом формате, например "10:00"
}

// dailySlots фиксированный список слотов рабочего дня
// Полчаса с 10:00 AM до 5:00 PM, как в исходном диалоге бронирования
var dailySlots = []TimeSlot{
	{Label: "10:00 AM", Start: "10:00"},
	{Label: "10:30 AM", Start: "10:30"},
	{Label: "11:00 AM", Start: "11:00"},
	{Label: "11:30 AM", Start: "11:30"},
	{Label: "12:00 PM", Start: "12:00"},
	{Label: "12:30 PM", Start: "12:30"},
	{Label: "1:00 PM", Start: "13:00"},
	{Label: "1:30 PM", Start: "13:30"},
	{Label: "2:00 PM", Start: "14:00"},
	{Label: "2:30 PM", Start: "14:30"},
	{Label: "3:00 PM", Start: "15:00"},
	{Label: "3:30 PM", Start: "15:30"},
	{Label: "4:00 PM", Start: "16:00"},
	{Label: "4:30 PM", Start: "16:30"},
	{Label: "5:00 PM", Start: "17:00"},
}

// DailyTimeSlots возвращает упорядоченный список слотов дня
func DailyTimeSlots() []TimeSlot {
	slots := make([]TimeSlot, len(dailySlots))
	copy(slots, dailySlots)
	return slots
}

// SlotByLabel находит слот по отображаемой метке
func SlotByLabel(label string) (TimeSlot, bool) {
	for _, slot := range dailySlots {
		if slot.Label == label {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// SelectableOn возвращает true, если слот можно выбрать на указанную дату
// Правила:
//   - дата в прошлом - слот недоступен;
//   - дата в будущем - слот доступен независимо от времени;
//   - дата сегодня - слот доступен, только если его время строго позже now.
//     Совпадение времени слота с now считается прошлым, чтобы не гнаться
//     за часами при отправке.
func (s TimeSlot) SelectableOn(selectedDate time.Time, now time.Time) bool {
	if IsPastDate(selectedDate, now) {
		return false
	}
	if !IsSameDay(selectedDate, now) {
		return true
	}
	return s.Start.IsAfter(types.NewTimeString(now))
}

// WireTime возвращает время начала слота в формате бэкенда (HH:MM:SS)
func (s TimeSlot) WireTime() string {
	return s.Start.String() + ":00"
}
