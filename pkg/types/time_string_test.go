package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	// Секунды отбрасываются
	moment := time.Date(2025, time.October, 15, 14, 35, 59, 0, time.Local)
	assert.Equal(t, TimeString("14:35"), NewTimeString(moment))

	midnight := time.Date(2025, time.October, 15, 0, 0, 0, 0, time.Local)
	assert.Equal(t, TimeString("00:00"), NewTimeString(midnight))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	for _, invalid := range []string{"25:00", "9:30 AM", "abc", "", "12:60"} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", invalid)
	}
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))

	assert.True(t, TimeString("17:00").IsAfter("16:30"))
	assert.False(t, TimeString("17:00").IsAfter("17:00"))

	// Некорректный формат не сравнивается
	assert.False(t, TimeString("bad").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("bad"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	shifted, err := TimeString("10:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), shifted)

	shifted, err = TimeString("16:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("17:00"), shifted)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	// Колонка TIME приходит с секундами
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15:59")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 8, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	value, err := TimeString("14:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "14:00", value)

	value, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	_, err = TimeString("nonsense").Value()
	assert.Error(t, err)
}
