package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonthGrid(t *testing.T) {
	tests := []struct {
		name          string
		year          int
		month         time.Month
		wantYear      int
		wantMonth     time.Month
		wantBlanks    int
		wantDays      int
	}{
		{
			// 1 октября 2025 - среда
			name:       "october 2025 starts on wednesday",
			year:       2025,
			month:      time.October,
			wantYear:   2025,
			wantMonth:  time.October,
			wantBlanks: 3,
			wantDays:   31,
		},
		{
			// 1 февраля 2026 - воскресенье, пустых ячеек нет
			name:       "february 2026 starts on sunday",
			year:       2026,
			month:      time.February,
			wantYear:   2026,
			wantMonth:  time.February,
			wantBlanks: 0,
			wantDays:   28,
		},
		{
			name:       "leap february",
			year:       2028,
			month:      time.February,
			wantYear:   2028,
			wantMonth:  time.February,
			wantBlanks: 2,
			wantDays:   29,
		},
		{
			name:       "month thirteen rolls into next year",
			year:       2025,
			month:      time.Month(13),
			wantYear:   2026,
			wantMonth:  time.January,
			wantBlanks: 4,
			wantDays:   31,
		},
		{
			name:       "month zero rolls into previous year",
			year:       2025,
			month:      time.Month(0),
			wantYear:   2024,
			wantMonth:  time.December,
			wantBlanks: 0,
			wantDays:   31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewMonthGrid(tt.year, tt.month)

			assert.Equal(t, tt.wantYear, grid.Year)
			assert.Equal(t, tt.wantMonth, grid.Month)
			assert.Equal(t, tt.wantBlanks, grid.LeadingBlanks())
			assert.Equal(t, tt.wantDays, grid.DaysInMonth())
			assert.Len(t, grid.Cells, tt.wantBlanks+tt.wantDays)

			// Ведущие ячейки пустые, дальше дни по порядку
			for i, cell := range grid.Cells {
				if i < tt.wantBlanks {
					assert.Nil(t, cell)
					continue
				}
				require.NotNil(t, cell)
				assert.Equal(t, i-tt.wantBlanks+1, cell.Day())
			}
		})
	}
}

func TestNextPrevMonth(t *testing.T) {
	year, month := NextMonth(2025, time.December)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.January, month)

	year, month = PrevMonth(2026, time.January)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.December, month)

	year, month = NextMonth(2025, time.June)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.July, month)
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2025, time.October, 15, 14, 30, 0, 0, time.Local)

	// Сегодня не в прошлом, даже поздним вечером
	assert.False(t, IsPastDate(time.Date(2025, time.October, 15, 0, 0, 0, 0, time.Local), now))
	assert.False(t, IsPastDate(time.Date(2025, time.October, 16, 0, 0, 0, 0, time.Local), now))
	assert.True(t, IsPastDate(time.Date(2025, time.October, 14, 23, 59, 0, 0, time.Local), now))
}

func TestDateOnly(t *testing.T) {
	date := DateOnly(time.Date(2025, time.October, 15, 14, 30, 45, 123, time.Local))
	assert.Equal(t, time.Date(2025, time.October, 15, 0, 0, 0, 0, time.Local), date)
}

func TestIsSameDay(t *testing.T) {
	a := time.Date(2025, time.October, 15, 1, 0, 0, 0, time.Local)
	b := time.Date(2025, time.October, 15, 23, 0, 0, 0, time.Local)
	c := time.Date(2025, time.October, 16, 0, 0, 0, 0, time.Local)

	assert.True(t, IsSameDay(a, b))
	assert.False(t, IsSameDay(a, c))
}
