package dashboard

import (
	"fmt"
	"math"
	"time"
)

// FormatCountdown renders a remaining duration as HH:MM:SS. Partial seconds
// are dropped and negative durations render as zero.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}

// FormatPercent rounds an elapsed percentage to a whole number.
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(fraction)))
}
