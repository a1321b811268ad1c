package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.00s"},
		{1500 * time.Millisecond, "1.50s"},
		{2*time.Minute + 3*time.Second, "2m 3.00s"},
		{time.Hour + 2*time.Minute + 3500*time.Millisecond, "1h 2m 3.50s"},
		{50*time.Hour + 59*time.Second, "2d 2h 0m 59.00s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.d))
	}
}

func TestDecorateText(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SuccessColor+"done"+DefaultColor, DecorateText("done", SuccessMessage))
	assert.Equal(ErrorColor+"failed"+DefaultColor, DecorateText("failed", ErrorMessage))
	assert.Equal("plain", DecorateText("plain", MessageType(42)))
}

func TestMinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(-3, Min(4, -3))
	assert.Equal(5, Max(2, 5))
	assert.Equal(1.5, Max(1.5, -2.0))
	assert.Equal("a", Min("b", "a"))
}
