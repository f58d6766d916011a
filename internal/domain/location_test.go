package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestValidateCoordinates(t *testing.T) {
	assert.NoError(t, ValidateCoordinates(31.5204, 74.3587))
	assert.NoError(t, ValidateCoordinates(-90, 180))

	assert.Error(t, ValidateCoordinates(90.1, 0))
	assert.Error(t, ValidateCoordinates(-90.1, 0))
	assert.Error(t, ValidateCoordinates(0, 180.1))
	assert.Error(t, ValidateCoordinates(0, -180.1))
}

func TestTruncateAddress(t *testing.T) {
	t.Run("short address untouched", func(t *testing.T) {
		assert.Equal(t, "Main Street 5", TruncateAddress("Main Street 5"))
	})

	t.Run("ascii address cut at limit", func(t *testing.T) {
		long := strings.Repeat("a", MaxAddressLength+50)
		truncated := TruncateAddress(long)
		assert.Len(t, truncated, MaxAddressLength)
	})

	t.Run("multi-byte address cut on rune boundary", func(t *testing.T) {
		// 200 трехбайтовых рун - 600 байт; срез по байтам разорвал бы руну
		long := strings.Repeat("日", 200)
		truncated := TruncateAddress(long)

		assert.True(t, utf8.ValidString(truncated))
		assert.LessOrEqual(t, len(truncated), MaxAddressLength)
		assert.Equal(t, 170, utf8.RuneCountInString(truncated))
	})

	t.Run("exact limit untouched", func(t *testing.T) {
		exact := strings.Repeat("a", MaxAddressLength)
		assert.Equal(t, exact, TruncateAddress(exact))
	})
}
