package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyTimeSlots(t *testing.T) {
	slots := DailyTimeSlots()

	require.Len(t, slots, 15)
	assert.Equal(t, "10:00 AM", slots[0].Label)
	assert.Equal(t, "5:00 PM", slots[14].Label)

	// Метки после полудня идут без ведущего нуля
	assert.Equal(t, "1:00 PM", slots[6].Label)
	assert.Equal(t, "1:30 PM", slots[7].Label)

	// Слоты идут с шагом в полчаса
	for i := 1; i < len(slots); i++ {
		next, err := slots[i-1].Start.AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, next, slots[i].Start)
	}
}

func TestSlotByLabel(t *testing.T) {
	slot, ok := SlotByLabel("2:00 PM")
	require.True(t, ok)
	assert.Equal(t, "14:00", string(slot.Start))

	_, ok = SlotByLabel("9:00 AM")
	assert.False(t, ok)

	_, ok = SlotByLabel("")
	assert.False(t, ok)
}

func TestSlotSelectableOn(t *testing.T) {
	// 15 октября 2025, 14:35
	now := time.Date(2025, time.October, 15, 14, 35, 0, 0, time.Local)

	today := time.Date(2025, time.October, 15, 0, 0, 0, 0, time.Local)
	tomorrow := today.AddDate(0, 0, 1)
	yesterday := today.AddDate(0, 0, -1)

	slotAt := func(label string) TimeSlot {
		slot, ok := SlotByLabel(label)
		require.True(t, ok)
		return slot
	}

	tests := []struct {
		name  string
		slot  TimeSlot
		date  time.Time
		want  bool
	}{
		{"past date blocks every slot", slotAt("5:00 PM"), yesterday, false},
		{"future date allows every slot", slotAt("10:00 AM"), tomorrow, true},
		{"today past slot", slotAt("2:00 PM"), today, false},
		{"today upcoming slot", slotAt("3:00 PM"), today, true},
		{"today next half hour", slotAt("2:30 PM"), today, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slot.SelectableOn(tt.date, now))
		})
	}
}

func TestSlotSelectableOnExactBoundary(t *testing.T) {
	// Время слота, совпадающее с текущим, считается прошедшим
	now := time.Date(2025, time.October, 15, 14, 0, 0, 0, time.Local)
	today := time.Date(2025, time.October, 15, 0, 0, 0, 0, time.Local)

	slot, ok := SlotByLabel("2:00 PM")
	require.True(t, ok)
	assert.False(t, slot.SelectableOn(today, now))

	// Секунды внутри минуты не возвращают слот в доступные
	now = time.Date(2025, time.October, 15, 14, 0, 59, 0, time.Local)
	assert.False(t, slot.SelectableOn(today, now))
}

func TestSlotWireTime(t *testing.T) {
	slot, ok := SlotByLabel("10:00 AM")
	require.True(t, ok)
	assert.Equal(t, "10:00:00", slot.WireTime())

	slot, ok = SlotByLabel("1:30 PM")
	require.True(t, ok)
	assert.Equal(t, "13:30:00", slot.WireTime())
}
