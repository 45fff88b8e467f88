package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{-time.Second, "00:00:00"},
		{30 * time.Minute, "00:30:00"},
		{8*time.Hour + 59*time.Second, "08:00:59"},
		{time.Minute + 1500*time.Millisecond, "00:01:01"},
		{25 * time.Hour, "25:00:00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCountdown(tc.in), "input %v", tc.in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "75%", FormatPercent(74.6))
	assert.Equal(t, "0%", FormatPercent(0.4))
	assert.Equal(t, "100%", FormatPercent(100))
}
